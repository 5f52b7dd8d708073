package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/core/config"
	fxerror "github.com/msto63/fixstr/core/error"
	"github.com/msto63/fixstr/core/log"
	"github.com/msto63/fixstr/utils/fixstr"
)

var (
	cfgFile  string
	verbose  bool
	capacity int
	mode     string

	settings config.Settings
	logger   = log.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "fixstr",
	Short: "Fixed-capacity UTF-8 string toolkit",
	Long: `fixstr builds and edits UTF-8 strings whose byte capacity is fixed
up front. Every operation either fits, truncates at a char boundary, or
fails without changing the string.

Commands:
  apply    - run an operation script against a string
  inspect  - show length, capacity and char boundaries of a text
  convert  - decode UTF-8 or UTF-16 input given as hex
  version  - print version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	_ = logger.Sync()
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return fxerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fixstr.toml, then the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().IntVarP(&capacity, "capacity", "c", config.DefaultCapacity, "byte capacity")
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", config.DefaultMode, "strict or truncate")
}

// setup resolves settings from config file, environment and flags, in
// increasing priority, and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	settings = cfg.Settings()
	flags := cmd.Flags()
	if flags.Changed("capacity") {
		settings.Capacity = capacity
	}
	if flags.Changed("mode") {
		settings.Mode = mode
	}
	if verbose {
		settings.LogLevel = "debug"
	}

	if err := settings.Validate(); err != nil {
		return fxerror.Wrap(err, "invalid settings").WithCode(fxerror.CodeInvalidConfig)
	}

	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	format, err := log.ParseFormat(settings.LogFormat)
	if err != nil {
		return err
	}
	logger = log.NewWithConfig(log.Config{Level: level, Format: format, Output: os.Stderr, Name: "fixstr"})
	log.SetDefault(logger)

	logger.Debug("settings resolved", log.Fields{
		"config":   cfg.FilePath(),
		"capacity": settings.Capacity,
		"mode":     settings.Mode,
	})
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.DefaultEnvPrefix,
			Defaults:  config.DefaultValues(),
		})
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// build constructs a String from text with the resolved capacity and mode
func build(text string) (*fixstr.String, error) {
	if settings.Mode == "truncate" {
		return fixstr.FromString(settings.Capacity, text), nil
	}
	s, err := fixstr.TryFromString(settings.Capacity, text)
	if err != nil {
		return nil, fixstr.AsStructured(err)
	}
	return s, nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
}
