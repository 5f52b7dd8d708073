package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/internal/script"
)

var (
	applyInit string
	applyOps  []string
)

var applyCmd = &cobra.Command{
	Use:   "apply [script]",
	Short: "Run an operation script against a string",
	Long: `Runs the operations of a YAML or TOML script, or the ones given with
--op, and prints the content after every step.

Script format:
  capacity: 16
  mode: strict
  init: "hello"
  ops:
    - op: push_str
      arg: " world"

--op takes the compact form name[:index[:end]][=arg], e.g.
  fixstr apply --init hello --op push_str=" world" --op insert:0=">"

--capacity and --mode override the script. Operations: ` + strings.Join(script.Names(), ", "),
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyInit, "init", "", "initial content when no script file is given")
	applyCmd.Flags().StringArrayVar(&applyOps, "op", nil, "operation in compact form (repeatable)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	sc, err := loadScript(cmd, args)
	if err != nil {
		return err
	}

	report, err := script.NewRunner(logger).Run(cmd.Context(), sc)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport(report))
	return report.Err()
}

// loadScript builds the script from the file argument or the flags.
// Flags override the file.
func loadScript(cmd *cobra.Command, args []string) (*script.Script, error) {
	sc := &script.Script{Capacity: settings.Capacity, Mode: script.Mode(settings.Mode), Init: applyInit}
	if len(args) == 1 {
		parsed, err := script.ParseFile(args[0])
		if err != nil {
			return nil, err
		}
		sc = parsed
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		sc.Capacity = settings.Capacity
	}
	if flags.Changed("mode") {
		sc.Mode = script.Mode(settings.Mode)
	}
	if flags.Changed("init") {
		sc.Init = applyInit
	}
	for _, text := range applyOps {
		op, err := script.ParseOp(text)
		if err != nil {
			return nil, err
		}
		sc.Ops = append(sc.Ops, op)
	}
	return sc, nil
}

const contentWidth = 40

func renderReport(report *script.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("run %s", report.RunID)) + "\n")
	b.WriteString(field("capacity", report.Capacity) + "\n")
	b.WriteString(field("mode", report.Mode) + "\n")
	b.WriteString(field("init", fmt.Sprintf("%q", report.Initial)) + "\n\n")

	for _, step := range report.Steps {
		status := okStyle.Render("ok  ")
		if step.Failed() {
			status = errorStyle.Render("fail")
		}
		line := fmt.Sprintf("%3d %s %s %s %3d",
			step.Step, status, pad(clip(step.Op.String(), 28), 28),
			pad(clip(fmt.Sprintf("%q", step.Content), contentWidth), contentWidth), step.Len)
		if step.Output != "" {
			line += fmt.Sprintf("  -> %q", step.Output)
		}
		if step.Failed() {
			line += "  " + warnStyle.Render(step.Err.Error())
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + contentStyle.Render(report.Final) + "\n")
	b.WriteString(field("length", report.Len) + "\n")
	b.WriteString(field("failures", report.Failures) + "\n")
	return b.String()
}
