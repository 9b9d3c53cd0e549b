package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pavesi99/EndpointTracker/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want default", cfg.Server.Host)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("read timeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if cfg.Tracking.Unregistered != config.UnregisteredAllow {
		t.Errorf("unregistered policy = %q, want allow", cfg.Tracking.Unregistered)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics path = %q, want /metrics", cfg.Metrics.Path)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 8081
  read_timeout: 10s
  write_timeout: 20s
tracking:
  unregistered: ignore
  track_self: true
logging:
  level: debug
  format: console
metrics:
  enabled: true
  path: /internal/metrics
openapi:
  enabled: true
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8081 {
		t.Errorf("server = %q:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Tracking.Unregistered != config.UnregisteredIgnore {
		t.Errorf("unregistered policy = %q, want ignore", cfg.Tracking.Unregistered)
	}
	if !cfg.Tracking.TrackSelf {
		t.Error("track_self not set")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/internal/metrics" {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
	if !cfg.OpenAPI.Enabled {
		t.Error("openapi not enabled")
	}
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := writeConfig(t, "tracking:\n  unregistered: sometimes\n")

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad policy")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad log level")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 99999\n")

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad port")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRACKER_SERVER_PORT", "7070")
	t.Setenv("TRACKER_TRACKING_UNREGISTERED", "IGNORE")
	t.Setenv("TRACKER_LOG_LEVEL", "warn")
	t.Setenv("TRACKER_METRICS_ENABLED", "yes")

	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Tracking.Unregistered != config.UnregisteredIgnore {
		t.Errorf("unregistered policy = %q, want ignore", cfg.Tracking.Unregistered)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics not enabled from env")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRACKER_SERVER_HOST", "localhost")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Server.Host != "localhost" {
		t.Errorf("host = %q, want localhost", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestLoadWithFallback_NoFile(t *testing.T) {
	cfg, err := config.LoadWithFallback(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadWithFallback failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default", cfg.Server.Port)
	}
}
