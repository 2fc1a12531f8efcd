package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	DBDriver      string
	SQLitePath    string
	DatabaseURL   string
	BusyTimeout   time.Duration
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// RateLimit uses the ulule limiter format, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// An empty AuthSecret disables bearer authentication.
	AuthSecret   string
	AuthIssuer   string
	AuthTokenTTL time.Duration

	DefaultBankAccount string
	BankProfileDir     string
}

// AuthEnabled reports whether API requests must carry a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("SQLITE_PATH", "ledger.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("BUSY_TIMEOUT", "5s")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("AUTH_SECRET", "")
	v.SetDefault("AUTH_ISSUER", "household-ledger")
	v.SetDefault("AUTH_TOKEN_TTL", "720h")
	v.SetDefault("DEFAULT_BANK_ACCOUNT", "Bank")
	v.SetDefault("BANK_PROFILE_DIR", "")

	// Actual environment variables override the .env file and the defaults.
	v.AutomaticEnv()

	cfg := &Config{
		DBDriver:           strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		AuthSecret:         v.GetString("AUTH_SECRET"),
		AuthIssuer:         v.GetString("AUTH_ISSUER"),
		DefaultBankAccount: v.GetString("DEFAULT_BANK_ACCOUNT"),
		BankProfileDir:     v.GetString("BANK_PROFILE_DIR"),
	}

	var err error
	if cfg.BusyTimeout, err = duration(v, "BUSY_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.AuthTokenTTL, err = duration(v, "AUTH_TOKEN_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH cannot be empty when DB_DRIVER is %s", DriverSQLite)
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when DB_DRIVER is %s", DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q, expected %s or %s", cfg.DBDriver, DriverSQLite, DriverPostgres)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if !cfg.AuthEnabled() {
		slog.Warn("AUTH_SECRET not set, API authentication is disabled")
	}
	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
