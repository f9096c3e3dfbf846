package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	RunMigrations  bool
	LogLevel       string

	// Payments ledger
	Timezone             string
	Location             *time.Location
	FeaturePayments      bool
	PaymentsFeeTolerance decimal.Decimal
	PaymentsSubmittedBy  string

	// HTTP edge
	RateLimit          string   // ulule formatted rate, e.g. "300-M"; empty disables
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_TIMEZONE", "America/Los_Angeles")
	viper.SetDefault("FEATURE_PAYMENTS", true)
	viper.SetDefault("PAYMENTS_FEE_TOLERANCE", "0.02")
	viper.SetDefault("PAYMENTS_SUBMITTED_BY", "payments-service")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory ledger store.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.Timezone = strings.TrimSpace(viper.GetString("APP_TIMEZONE"))
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	toleranceStr := strings.TrimSpace(viper.GetString("PAYMENTS_FEE_TOLERANCE"))
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENTS_FEE_TOLERANCE %q: %w", toleranceStr, err)
	}
	if tolerance.IsNegative() {
		return nil, fmt.Errorf("invalid PAYMENTS_FEE_TOLERANCE %q: must be >= 0", toleranceStr)
	}
	cfg.PaymentsFeeTolerance = tolerance

	cfg.PaymentsSubmittedBy = viper.GetString("PAYMENTS_SUBMITTED_BY")
	if cfg.PaymentsSubmittedBy == "" {
		log.Println("Warning: PAYMENTS_SUBMITTED_BY is empty. Ledger rows will carry no submitter.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	cfg.FeaturePayments = viper.GetBool("FEATURE_PAYMENTS")
	cfg.RateLimit = strings.TrimSpace(viper.GetString("RATE_LIMIT"))
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
