// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Storage drivers accepted in STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var portPattern = regexp.MustCompile(`^[0-9]{1,5}$`)

// Config holds all configuration values for the API server and the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreDriver selects the key-value backend. Defaults to "file".
	StoreDriver string

	// StorePath is the directory (file) or database file (bolt, sqlite)
	// holding the records. Defaults to "data".
	StorePath string

	// DatabaseURL is the Postgres connection string. Required when StoreDriver is postgres.
	DatabaseURL string

	// HistoryLimit caps the number of kept history entries. Defaults to 20.
	HistoryLimit int

	// SeedTrips enables first-run seeding with the bundled starter trips.
	SeedTrips bool

	// SeedFile replaces the bundled starter trips with a YAML file when set.
	SeedFile string

	// SerializeWrites runs mutating HTTP requests one at a time.
	SerializeWrites bool

	// MaxBodyBytes limits request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a validated Config.
func Load() (Config, error) {
	var errs []string
	intEnv := func(key string, fallback int64) int64 {
		n, err := strconv.ParseInt(getEnv(key, strconv.FormatInt(fallback, 10)), 10, 64)
		if err != nil {
			errs = append(errs, key+" must be an integer")
			return fallback
		}
		return n
	}
	boolEnv := func(key string, fallback bool) bool {
		b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
		if err != nil {
			errs = append(errs, key+" must be a boolean")
			return fallback
		}
		return b
	}

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		StorePath:       getEnv("STORE_PATH", "data"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		HistoryLimit:    int(intEnv("HISTORY_LIMIT", 20)),
		SeedTrips:       boolEnv("SEED_TRIPS", true),
		SeedFile:        os.Getenv("SEED_FILE"),
		SerializeWrites: boolEnv("SERIALIZE_WRITES", true),
		MaxBodyBytes:    intEnv("MAX_BODY_BYTES", 1<<20),
	}
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid environment: %s", strings.Join(errs, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges and cross-field requirements.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Match(portPattern)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.StoreDriver, validation.Required,
			validation.In(DriverMemory, DriverFile, DriverBolt, DriverSQLite, DriverPostgres)),
		validation.Field(&c.StorePath,
			validation.When(c.StoreDriver == DriverFile || c.StoreDriver == DriverBolt || c.StoreDriver == DriverSQLite, validation.Required)),
		validation.Field(&c.DatabaseURL, validation.When(c.StoreDriver == DriverPostgres, validation.Required)),
		validation.Field(&c.HistoryLimit, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxBodyBytes, validation.Required, validation.Min(int64(1))),
	)
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
