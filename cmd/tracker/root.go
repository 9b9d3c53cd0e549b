package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Endpoint usage tracker for HTTP APIs",
	Long: `Tracker counts how often each HTTP route is invoked and reports
per-endpoint and aggregate usage, including routes that were registered
but never hit.

Quick start:
  tracker serve     # Start the tracker server

Management:
  tracker validate  # Validate configuration
  tracker version   # Show version`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tracker.yaml", "config file path")
}
