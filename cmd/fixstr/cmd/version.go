package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("fixstr v"+Version))
		fmt.Fprintln(out, field("Git Commit:", GitCommit))
		fmt.Fprintln(out, field("Build Date:", BuildDate))
		fmt.Fprintln(out, field("Go Version:", runtime.Version()))
		fmt.Fprintln(out, field("OS/Arch:", runtime.GOOS+"/"+runtime.GOARCH))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
