package cli

import (
	"errors"

	"github.com/hpvvs/salesops_backend/internal/platform/config"
	"github.com/hpvvs/salesops_backend/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply or roll back the ledger schema",
	Example: `  salesops migrate
  salesops migrate down`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	}
	direction, err := database.ParseMigrationDirection(raw)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("PGSQL_URL is required to run migrations")
	}

	return database.RunMigrations(newLogger(cfg.LogLevel), cfg.DatabaseURL, cfg.MigrationsPath, direction)
}
