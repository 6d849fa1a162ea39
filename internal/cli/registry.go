package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/logging"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/turso"
	"github.com/emiliopalmerini/srsadmin/internal/infrastructure/config"
	"github.com/emiliopalmerini/srsadmin/internal/migrate"
	"github.com/emiliopalmerini/srsadmin/internal/registry"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Run the experiment registry backend",
	Long: `Run the experiment registry: the admin endpoints that mint experiment
tokens and list registered experiments, backed by libsql.`,
}

var registryServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the admin API",
	Long: `Serve GET /v1/admin/experiment and GET /v1/admin/experiment/list.
Pending migrations are applied on start.

Examples:
  srsadmin registry serve
  SRS_REGISTRY_DATABASE_URL=libsql://db.example.turso.io srsadmin registry serve`,
	Args: cobra.NoArgs,
	RunE: runRegistryServe,
}

var registryMigrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run registry database migrations",
	Long: `Run registry database migrations.

Without arguments, runs all pending migrations.
With a version number, rolls back to that version.

Examples:
  srsadmin registry migrate      # Run all pending migrations
  srsadmin registry migrate 0    # Roll back all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegistryMigrate,
}

var registryPort int

func init() {
	registryCmd.AddCommand(registryServeCmd)
	registryCmd.AddCommand(registryMigrateCmd)

	registryServeCmd.Flags().IntVarP(&registryPort, "port", "p", 0, "Port to listen on (overrides SRS_REGISTRY_PORT)")
}

// openRegistry loads registry configuration and opens its database.
func openRegistry() (*config.Registry, *logging.Logger, *turso.DB, error) {
	cfg, err := config.LoadRegistry()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := turso.Open(cfg.DatabaseURL, cfg.AuthToken)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, logger, db, nil
}

func runRegistryServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	cfg, logger, db, err := openRegistry()
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	if err := db.Migrate(ctx, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	metrics := newMetrics(ctx, cfg.Telemetry, logger)
	defer metrics.Close(context.Background())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	mux := http.NewServeMux()
	registry.NewHandler(registry.NewService(turso.NewExperimentRepository(db.DB)), logger, metrics).RegisterRoutes(mux)
	r.Mount("/", mux)

	port := cfg.Port
	if registryPort != 0 {
		port = registryPort
	}
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("registry shutdown failed", "error", err)
		}
	}()

	logger.Info("starting registry", "addr", server.Addr, "database", cfg.DatabaseURL)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func runRegistryMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, logger, db, err := openRegistry()
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	if len(args) == 0 {
		if err := migrate.RunAll(ctx, db.DB, logger); err != nil {
			return err
		}
	} else {
		target, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
		if err := migrate.EnsureMigrationsTable(ctx, db.DB); err != nil {
			return fmt.Errorf("failed to create migrations table: %w", err)
		}
		if err := migrate.MigrateDownTo(ctx, db.DB, target, logger); err != nil {
			return err
		}
	}

	version, _, err := migrate.GetCurrentVersion(ctx, db.DB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registry schema at version %d\n", version)
	return nil
}
