package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/srsadmin/internal/util"
)

// Admin holds the location of the SQL-REST admin API.
type Admin struct {
	URL     string        `envconfig:"SRS_ADMIN_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"SRS_ADMIN_TIMEOUT" default:"30s"`
}

// Logging holds logger configuration.
type Logging struct {
	Level       string `envconfig:"SRS_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"SRS_LOG_DEVELOPMENT" default:"false"`
}

// Telemetry holds OTEL exporter configuration.
type Telemetry struct {
	Enabled  bool   `envconfig:"SRS_OTEL_ENABLED" default:"false"`
	Endpoint string `envconfig:"SRS_OTEL_ENDPOINT"`
	Insecure bool   `envconfig:"SRS_OTEL_INSECURE" default:"false"`
}

// Console holds configuration for the operator consoles (CLI, web, TUI).
type Console struct {
	Admin     Admin     `ignored:"true"`
	Logging   Logging   `ignored:"true"`
	Telemetry Telemetry `ignored:"true"`
	Port      int       `envconfig:"SRS_CONSOLE_PORT" default:"8090"`
}

// Registry holds configuration for the experiment registry backend.
type Registry struct {
	Logging     Logging   `ignored:"true"`
	Telemetry   Telemetry `ignored:"true"`
	DatabaseURL string    `envconfig:"SRS_REGISTRY_DATABASE_URL"`
	AuthToken   string    `envconfig:"SRS_REGISTRY_AUTH_TOKEN"`
	Port        int       `envconfig:"SRS_REGISTRY_PORT" default:"8080"`
}

// LoadConsole loads console configuration from environment variables.
func LoadConsole() (*Console, error) {
	var cfg Console
	if err := envconfig.Process("", &cfg.Admin); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg.Logging); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg.Telemetry); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadRegistry loads registry configuration from environment variables.
// Without SRS_REGISTRY_DATABASE_URL the registry uses a local libsql file
// under the XDG data directory.
func LoadRegistry() (*Registry, error) {
	var cfg Registry
	if err := envconfig.Process("", &cfg.Logging); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg.Telemetry); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		dir, err := util.GetXDGDataDir()
		if err != nil {
			return nil, fmt.Errorf("resolving data dir: %w", err)
		}
		cfg.DatabaseURL = "file:" + filepath.Join(dir, "registry.db")
	}
	return &cfg, nil
}
