package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	portssvc "github.com/hpvvs/salesops_backend/internal/core/ports/services"
	"github.com/hpvvs/salesops_backend/internal/core/services"
	"github.com/hpvvs/salesops_backend/internal/platform/config"
	"github.com/hpvvs/salesops_backend/internal/platform/metrics"
	"github.com/hpvvs/salesops_backend/internal/repositories/database/memory"
	"github.com/hpvvs/salesops_backend/internal/repositories/database/pgsql"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	"github.com/hpvvs/salesops_backend/pkg/database"
)

// application bundles what every command needs.
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *metrics.LedgerMetrics
	services *portssvc.ServiceContainer
	timeUtil *timeutil.TimeUtil
	close    func()
}

// newLogger builds the JSON stdout logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// bootstrap loads config, selects the ledger store and wires the services.
// Migrations run first when the store is PostgreSQL and RUN_MIGRATIONS is set.
func bootstrap(ctx context.Context) (*application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	app := &application{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics.NewLedgerMetrics(),
		timeUtil: timeutil.FromLocation(cfg.Location),
		close:    func() {},
	}

	if cfg.DatabaseURL == "" {
		logger.Warn("PGSQL_URL not set; using in-memory ledger store. Documents will not survive a restart.")
		app.services = services.NewServiceContainer(cfg, memory.NewRepositoryProvider(), app.metrics)
		return app, nil
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp); err != nil {
			return nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	app.services = services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), app.metrics)
	app.close = func() { database.ClosePgxPool(dbPool) }
	return app, nil
}
