package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pavesi99/EndpointTracker/bootstrap"
	"github.com/Pavesi99/EndpointTracker/config"
)

var (
	hotReload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tracker server",
	Long: `Start the endpoint usage tracker server.

The server will:
  - Load configuration from tracker.yaml (or --config)
  - Or load configuration from TRACKER_* environment variables
  - Discover every route and register it with the usage store
  - Record one hit per matched request
  - Serve usage reports on /tracker/usage and /tracker/unused

Environment variables (for Docker deployments):
  TRACKER_SERVER_PORT           - Server port (default: 8080)
  TRACKER_TRACKING_UNREGISTERED - Unknown-key policy: allow or ignore
  TRACKER_TRACKING_TRACK_SELF   - Track the tracker's own endpoints
  TRACKER_LOG_LEVEL             - Log level: debug, info, warn, error

Examples:
  tracker serve
  tracker serve --config /etc/tracker/config.yaml
  tracker serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	var app *bootstrap.App
	var err error

	if hasConfigFile && hotReload {
		// Hot reload only works with a config file
		app, err = bootstrap.NewWithHotReload(cfgFile)
	} else {
		cfg, loadErr := config.LoadWithFallback(cfgFile)
		if loadErr != nil {
			return fmt.Errorf("error loading config: %w", loadErr)
		}

		if !hasConfigFile {
			fmt.Println("Running with environment variables (no config file)")
		}

		app, err = bootstrap.New(cfg)
	}

	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	return app.Run()
}
