// Package bootstrap wires all dependencies and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	trackerhttp "github.com/Pavesi99/EndpointTracker/adapters/http"
	"github.com/Pavesi99/EndpointTracker/adapters/idgen"
	"github.com/Pavesi99/EndpointTracker/adapters/memory"
	"github.com/Pavesi99/EndpointTracker/adapters/metrics"
	"github.com/Pavesi99/EndpointTracker/config"
	"github.com/Pavesi99/EndpointTracker/docs"
)

// Version is stamped by the build; the CLI overrides it.
var Version = "dev"

// App represents the running application.
type App struct {
	Config     *config.Config
	Logger     zerolog.Logger
	Store      *memory.UsageStore
	Metrics    *metrics.Collector
	Router     http.Handler
	HTTPServer *http.Server
	Holder     *config.Holder
	InstanceID string
}

// New creates and initializes the application from a loaded config.
func New(cfg *config.Config) (*App, error) {
	logger := setupLogger(cfg.Logging)
	instanceID := idgen.UUID{}.New()
	logger = logger.With().Str("instance", instanceID).Logger()

	store := memory.NewUsageStore(memory.UsageStoreConfig{
		DisallowUnregistered: cfg.Tracking.Unregistered == config.UnregisteredIgnore,
	})

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New()
	}

	handler := trackerhttp.NewHandler(store, logger, collector, instanceID, Version)
	router := handler.Router(cfg)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	app := &App{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Metrics:    collector,
		Router:     router,
		InstanceID: instanceID,
		HTTPServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	logger.Info().
		Str("unregistered", cfg.Tracking.Unregistered).
		Bool("track_self", cfg.Tracking.TrackSelf).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("tracker initialized")

	return app, nil
}

// NewWithHotReload creates the application with config file watching.
// Reloads re-run route discovery (a no-op for unchanged routes, since
// registration is idempotent) and adjust the log level; settings that are
// baked into the store or the listener require a restart.
func NewWithHotReload(path string) (*App, error) {
	bootLogger := setupLogger(config.LoggingConfig{Level: "info", Format: "json"})

	holder, err := config.NewHolder(path, bootLogger)
	if err != nil {
		return nil, err
	}

	app, err := New(holder.Get())
	if err != nil {
		holder.Stop()
		return nil, err
	}
	app.Holder = holder

	holder.OnChange(func(cfg *config.Config) {
		app.applyReload(cfg)
	})

	if err := holder.WatchFile(); err != nil {
		holder.Stop()
		return nil, fmt.Errorf("watch config: %w", err)
	}
	holder.WatchSignals()

	return app, nil
}

// applyReload applies the reloadable subset of a new config.
func (a *App) applyReload(cfg *config.Config) {
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Re-register routes; idempotent for keys that already have records.
	if routes, ok := a.Router.(chi.Routes); ok {
		trackerhttp.DiscoverFunc(routes, a.Store, func(pattern string) bool {
			return cfg.Tracking.TrackSelf || !trackerhttp.SelfRoute(pattern)
		})
	}

	if a.Metrics != nil {
		a.Metrics.ConfigReloads.Inc()
	}

	if cfg.Tracking.Unregistered != a.Config.Tracking.Unregistered {
		a.Logger.Warn().Msg("tracking.unregistered changed, restart required to take effect")
	}

	a.Config = cfg
	a.Logger.Info().Msg("configuration applied")
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", a.HTTPServer.Addr).
			Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if a.Holder != nil {
		a.Holder.Stop()
	}

	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	a.Logger.Info().
		Int64("total_requests", a.Store.TotalRequests()).
		Int("endpoints", a.Store.Len()).
		Msg("tracker stopped")
	return nil
}

func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
