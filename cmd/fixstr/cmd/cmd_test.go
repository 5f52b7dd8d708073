package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/fixstr/core/config"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with a quiet config file and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.KeyCapacity, config.KeyMode, config.KeyLogLevel, config.KeyLogFormat} {
		t.Setenv(config.EnvKey(config.DefaultEnvPrefix, key), "")
	}

	cfgPath := filepath.Join(t.TempDir(), "fixstr.toml")
	if err := os.WriteFile(cfgPath, []byte("capacity = 16\n[log]\nlevel = \"error\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "fixstr v"+Version) || !strings.Contains(out, "Go Version:") {
		t.Errorf("output = %q", out)
	}
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "héllo")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"héllo", "U+00E9", "remaining", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if settings.Capacity != 16 {
		t.Errorf("capacity from config = %d", settings.Capacity)
	}
}

func TestInspectOverflow(t *testing.T) {
	_, err := execute(t, "inspect", "--capacity", "2", "héllo")
	if err == nil || ExitCode(err) != 3 {
		t.Errorf("error = %v, exit code %d", err, ExitCode(err))
	}

	out, err := execute(t, "inspect", "--capacity", "2", "--mode", "truncate", "héllo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "truncated: 5 bytes dropped") {
		t.Errorf("output = %q", out)
	}
}

func TestInvalidSettings(t *testing.T) {
	_, err := execute(t, "inspect", "--mode", "lossy", "x")
	if ExitCode(err) != 5 {
		t.Errorf("error = %v, exit code %d", err, ExitCode(err))
	}
	if ExitCode(nil) != 0 {
		t.Error("ExitCode(nil) != 0")
	}
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("FIXSTR_CAPACITY", "3")
	cfgPath := filepath.Join(t.TempDir(), "fixstr.yaml")
	if err := os.WriteFile(cfgPath, []byte("capacity: 16\nlog:\n  level: error\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	resetFlags(rootCmd)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--config", cfgPath, "inspect", "abcd"})
	if err := rootCmd.Execute(); ExitCode(err) != 3 {
		t.Errorf("error = %v, want overflow with capacity 3", err)
	}
}

func TestApplyOps(t *testing.T) {
	out, err := execute(t, "apply", "--capacity", "8", "--init", "ab",
		"--op", "push_str=cd", "--op", "insert:9=x", "--op", "pop")
	if ExitCode(err) != 4 {
		t.Fatalf("error = %v, exit code %d", err, ExitCode(err))
	}
	for _, want := range []string{`"abcd"`, "fail", "out of bounds", `-> "d"`, "failures"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestApplyScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `capacity: 4
mode: strict
init: "ab"
ops:
  - op: push_str
    arg: "cdef"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "apply", path); ExitCode(err) != 4 {
		t.Errorf("strict run error = %v", err)
	}

	out, err := execute(t, "apply", "--mode", "truncate", path)
	if err != nil {
		t.Fatalf("truncate run error = %v", err)
	}
	if !strings.Contains(out, `"abcd"`) {
		t.Errorf("output = %q", out)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
		exit int
	}{
		{"utf8", []string{"convert", "e2 82 ac"}, "U+20AC", 0},
		{"utf8 invalid", []string{"convert", "00 9f 92 96"}, "", 3},
		{"utf8 truncate keeps prefix", []string{"convert", "--mode", "truncate", "41 ff"}, "U+0041", 0},
		{"utf16", []string{"convert", "--from", "utf16", "d834dd1e006d"}, "U+1D11E", 0},
		{"utf16 invalid", []string{"convert", "--from", "utf16", "d800 0069"}, "", 3},
		{"utf16 lossy", []string{"convert", "--from", "utf16", "--lossy", "d800,0069"}, "U+FFFD", 0},
		{"utf16 truncate invalid", []string{"convert", "--from", "utf16", "--mode", "truncate", "0061 d800 0062"}, "", 3},
		{"utf16 truncate cuts", []string{"convert", "--from", "utf16", "--mode", "truncate", "-c", "1", "0061 0062"}, "U+0061", 0},
		{"bad encoding", []string{"convert", "--from", "latin1", "41"}, "", 1},
		{"bad hex", []string{"convert", "zz"}, "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if ExitCode(err) != tt.exit {
				t.Fatalf("error = %v, exit code %d, want %d", err, ExitCode(err), tt.exit)
			}
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}
