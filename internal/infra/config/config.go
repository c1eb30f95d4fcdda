package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken        string
	LogLevel             string
	Environment          string
	CatalogPath          string // YAML subject catalog; built-in catalog when empty
	DataDir              string // Base directory for csv sources
	DatabaseURL          string // Needed only by postgres sources
	SQLitePath           string // Needed only by sqlite sources
	RedisURL             string // Stream sessions go to Redis when set, memory otherwise
	HTTPAddr             string // Empty disables the HTTP API
	Locale               string
	FetchConcurrency     int
	SourceTimeout        time.Duration
	LookupTimeout        time.Duration
	SessionTTL           time.Duration
	ProcessingMessageTTL time.Duration
	NotFoundMessageTTL   time.Duration
	CronSpecSourceProbe  string
	CronSpecSessionSweep string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		RedisURL:      os.Getenv("REDIS_URL"),
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
	}
	var err error

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.DataDir = os.Getenv("DATA_DIR")
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	cfg.Locale = strings.ToLower(os.Getenv("LOCALE"))
	if cfg.Locale == "" {
		cfg.Locale = "am"
	}
	if cfg.Locale != "am" && cfg.Locale != "en" {
		return nil, fmt.Errorf("invalid LOCALE %q: expected am or en", cfg.Locale)
	}

	if cfg.FetchConcurrency, err = intEnv("FETCH_CONCURRENCY", 4); err != nil {
		return nil, err
	}
	if cfg.FetchConcurrency < 1 {
		return nil, fmt.Errorf("invalid FETCH_CONCURRENCY: must be at least 1")
	}

	if cfg.SourceTimeout, err = durationEnv("SOURCE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.LookupTimeout, err = durationEnv("LOOKUP_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ProcessingMessageTTL, err = durationEnv("PROCESSING_MESSAGE_TTL", 1*time.Second); err != nil {
		return nil, err
	}
	if cfg.NotFoundMessageTTL, err = durationEnv("NOT_FOUND_MESSAGE_TTL", 60*time.Second); err != nil {
		return nil, err
	}

	cfg.CronSpecSourceProbe = os.Getenv("CRON_SPEC_SOURCE_PROBE")
	if cfg.CronSpecSourceProbe == "" {
		cfg.CronSpecSourceProbe = "*/10 * * * *" // Default: every 10 minutes
	}
	cfg.CronSpecSessionSweep = os.Getenv("CRON_SPEC_SESSION_SWEEP")
	if cfg.CronSpecSessionSweep == "" {
		cfg.CronSpecSessionSweep = "*/15 * * * *" // Default: every 15 minutes
	}

	return cfg, nil
}

// RequireTelegram checks the settings only the bot process needs.
func (c *AppConfig) RequireTelegram() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is not set")
	}
	return nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return v, nil
}
