// Package cli provides the cobra command surface for qoderbridge.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set from main.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var rootCmd = &cobra.Command{
	Use:   "qoderbridge",
	Short: "Automation bridge for the QoderCLI coding agent",
	Long: `Qoderbridge automates the external QoderCLI tool: run prompts against a
project directory, check login status, and drive a plan-confirm-execute
workflow whose runs are recorded for later inspection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(scaffoldCmd)
}
