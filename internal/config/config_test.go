package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "STORE_DRIVER", "STORE_PATH", "DATABASE_URL",
		"HISTORY_LIMIT", "SEED_TRIPS", "SEED_FILE", "SERIALIZE_WRITES", "MAX_BODY_BYTES",
	} {
		t.Setenv(k, "")
	}
}

// TestLoad_defaults verifies that every variable falls back to its default.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, config.DriverFile, cfg.StoreDriver)
	require.Equal(t, "data", cfg.StorePath)
	require.Equal(t, 20, cfg.HistoryLimit)
	require.True(t, cfg.SeedTrips)
	require.True(t, cfg.SerializeWrites)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/trips")
	t.Setenv("HISTORY_LIMIT", "5")
	t.Setenv("SEED_TRIPS", "false")
	t.Setenv("SERIALIZE_WRITES", "0")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, config.DriverPostgres, cfg.StoreDriver)
	require.Equal(t, "postgres://user:pass@db:5432/trips", cfg.DatabaseURL)
	require.Equal(t, 5, cfg.HistoryLimit)
	require.False(t, cfg.SeedTrips)
	require.False(t, cfg.SerializeWrites)
	require.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

// TestLoad_postgresNeedsURL verifies that DATABASE_URL is only required for postgres.
func TestLoad_postgresNeedsURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DatabaseURL")
}

func TestLoad_invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"unknown driver", "STORE_DRIVER", "redis", "StoreDriver"},
		{"bad level", "LOG_LEVEL", "loud", "LogLevel"},
		{"bad port", "PORT", "http", "Port"},
		{"zero history", "HISTORY_LIMIT", "0", "HistoryLimit"},
		{"non-numeric history", "HISTORY_LIMIT", "many", "HISTORY_LIMIT"},
		{"non-bool seed", "SEED_TRIPS", "sometimes", "SEED_TRIPS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := config.Load()

			require.Error(t, err)
			require.ErrorContains(t, err, tt.want)
		})
	}
}
