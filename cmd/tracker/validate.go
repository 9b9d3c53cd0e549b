package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pavesi99/EndpointTracker/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long:  `Load and validate the configuration file, then exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("configuration invalid: %w", err)
		}

		fmt.Println("Configuration valid")
		fmt.Printf("  Listen: %s:%d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Printf("  Unregistered keys: %s\n", cfg.Tracking.Unregistered)
		fmt.Printf("  Track self: %v\n", cfg.Tracking.TrackSelf)
		fmt.Printf("  Metrics: %v\n", cfg.Metrics.Enabled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
