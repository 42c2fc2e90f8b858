package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgo/northstar/internal/calendar"
)

// Store drivers
const (
	DriverMemory    = "memory"
	DriverPostgres  = "postgres"
	DriverSurrealDB = "surrealdb"
)

// Config holds all application configuration
type Config struct {
	Env             string
	LogLevel        string
	DefaultTimezone string
	Store           StoreConfig
	Postgres        PostgresConfig
	Database        DatabaseConfig
	Limits          LimitsConfig
}

// StoreConfig selects the storage backend
type StoreConfig struct {
	Driver string
}

// PostgresConfig holds PostgreSQL connection settings
type PostgresConfig struct {
	URL             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// LimitsConfig holds the soft caps enforced before writes
type LimitsConfig struct {
	ActiveGoalCap int
	WeeklyTaskCap int
	WeeklyTaskMin int
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Env:             getEnv("NORTHSTAR_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "UTC"),
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", DriverMemory),
		},
		Postgres: PostgresConfig{
			URL:             getEnv("POSTGRES_URL", ""),
			MaxOpenConns:    getIntEnv("POSTGRES_MAX_OPEN_CONNS", 10),
			ConnMaxLifetime: getDurationEnv("POSTGRES_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "northstar"),
			Database:  getEnv("DB_DATABASE", "main"),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Limits: LimitsConfig{
			ActiveGoalCap: getIntEnv("ACTIVE_GOAL_CAP", 12),
			WeeklyTaskCap: getIntEnv("WEEKLY_TASK_CAP", 7),
			WeeklyTaskMin: getIntEnv("WEEKLY_TASK_MIN", 2),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Env != "development" && c.Env != "production" && c.Env != "test" {
		errs = append(errs, fmt.Errorf("NORTHSTAR_ENV must be 'development', 'production', or 'test', got '%s'", c.Env))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got '%s'", c.LogLevel))
	}
	if _, err := calendar.LoadLocation(c.DefaultTimezone); err != nil {
		errs = append(errs, fmt.Errorf("DEFAULT_TIMEZONE '%s' is not a known IANA timezone", c.DefaultTimezone))
	}

	// Store validation
	switch c.Store.Driver {
	case DriverMemory:
		if c.IsProduction() {
			errs = append(errs, errors.New("STORE_DRIVER=memory is not allowed in production"))
		}
	case DriverPostgres:
		if c.Postgres.URL == "" {
			errs = append(errs, errors.New("POSTGRES_URL is required when STORE_DRIVER is postgres"))
		}
		if c.Postgres.MaxOpenConns <= 0 {
			errs = append(errs, errors.New("POSTGRES_MAX_OPEN_CONNS must be positive"))
		}
	case DriverSurrealDB:
		if err := c.Database.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("SurrealDB: %w", err))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be 'memory', 'postgres', or 'surrealdb', got '%s'", c.Store.Driver))
	}

	// Limits validation
	if c.Limits.ActiveGoalCap <= 0 {
		errs = append(errs, errors.New("ACTIVE_GOAL_CAP must be positive"))
	}
	if c.Limits.WeeklyTaskCap <= 0 {
		errs = append(errs, errors.New("WEEKLY_TASK_CAP must be positive"))
	}
	if c.Limits.WeeklyTaskMin < 0 || c.Limits.WeeklyTaskMin > c.Limits.WeeklyTaskCap {
		errs = append(errs, errors.New("WEEKLY_TASK_MIN must be between 0 and WEEKLY_TASK_CAP"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks that all required SurrealDB fields are present
func (d DatabaseConfig) Validate() error {
	var missing []string
	if d.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if d.Port == "" {
		missing = append(missing, "DB_PORT")
	}
	if d.Namespace == "" {
		missing = append(missing, "DB_NAMESPACE")
	}
	if d.Database == "" {
		missing = append(missing, "DB_DATABASE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
