package cli

import (
	"context"
	"fmt"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/adminapi"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/logging"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/otel"
	"github.com/emiliopalmerini/srsadmin/internal/infrastructure/config"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
)

// AppContext holds the shared dependencies of the console commands.
type AppContext struct {
	Config  *config.Console
	Logger  *logging.Logger
	Metrics ports.MetricsExporter
	API     ports.ExperimentAPI
}

// NewAppContext loads configuration, applies flag overrides and wires the
// admin API client.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.LoadConsole()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if adminURL != "" {
		cfg.Admin.URL = adminURL
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	metrics := newMetrics(ctx, cfg.Telemetry, logger)

	api := adminapi.NewClient(cfg.Admin.URL,
		adminapi.WithTimeout(cfg.Admin.Timeout),
		adminapi.WithLogger(logger),
		adminapi.WithMetrics(metrics),
	)

	return &AppContext{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		API:     api,
	}, nil
}

// Close flushes metrics and logs.
func (a *AppContext) Close(ctx context.Context) error {
	var err error
	if a.Metrics != nil {
		err = a.Metrics.Close(ctx)
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return err
}

// newMetrics returns an OTLP exporter when telemetry is enabled, and a no-op
// exporter otherwise or when the exporter cannot be created.
func newMetrics(ctx context.Context, cfg config.Telemetry, logger ports.Logger) ports.MetricsExporter {
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, otel.Config{
		Enabled:  cfg.Enabled,
		Endpoint: cfg.Endpoint,
		Insecure: cfg.Insecure,
	})
	if err != nil {
		logger.Error("metrics disabled", "error", err)
		return otel.NewNoOpExporter()
	}
	return exp
}
