package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warbler-cli",
	Short: "Warbler CLI tool",
	Long: `Warbler CLI is the command-line interface for the Warbler application.

Available commands:
  serve      Start the HTTP server
  version    Print the version number

Use "warbler-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
