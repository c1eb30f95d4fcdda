package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"TELEGRAM_TOKEN", "LOG_LEVEL", "ENVIRONMENT", "CATALOG_PATH", "DATA_DIR", "DATABASE_URL",
	"SQLITE_PATH", "REDIS_URL", "HTTP_ADDR", "LOCALE", "FETCH_CONCURRENCY", "SOURCE_TIMEOUT",
	"LOOKUP_TIMEOUT", "SESSION_TTL", "PROCESSING_MESSAGE_TTL", "NOT_FOUND_MESSAGE_TTL",
	"CRON_SPEC_SOURCE_PROBE", "CRON_SPEC_SESSION_SWEEP",
}

// clearEnv runs the test from an empty directory with every key blank so a
// developer's .env or shell does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "am", cfg.Locale)
	assert.Equal(t, 4, cfg.FetchConcurrency)
	assert.Equal(t, 15*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 60*time.Second, cfg.LookupTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, time.Second, cfg.ProcessingMessageTTL)
	assert.Equal(t, time.Minute, cfg.NotFoundMessageTTL)
	assert.Equal(t, "*/10 * * * *", cfg.CronSpecSourceProbe)
	assert.Equal(t, "*/15 * * * *", cfg.CronSpecSessionSweep)
	assert.Error(t, cfg.RequireTelegram())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOCALE", "EN")
	t.Setenv("FETCH_CONCURRENCY", "9")
	t.Setenv("SOURCE_TIMEOUT", "3s")
	t.Setenv("NOT_FOUND_MESSAGE_TTL", "0s")
	t.Setenv("HTTP_ADDR", ":8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 9, cfg.FetchConcurrency)
	assert.Equal(t, 3*time.Second, cfg.SourceTimeout)
	assert.Zero(t, cfg.NotFoundMessageTTL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.NoError(t, cfg.RequireTelegram())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"LOCALE":            "fr",
		"FETCH_CONCURRENCY": "0",
		"SOURCE_TIMEOUT":    "soon",
		"SESSION_TTL":       "-1h",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}
