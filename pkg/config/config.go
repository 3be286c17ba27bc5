package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Worker        WorkerConfig
	Dictionary    DictionaryConfig
	Observability ObservabilityConfig
	Logging       LoggingConfig
}

// WorkerConfig drives the batch worker's sweep of the transcript drop
// directory.
type WorkerConfig struct {
	InputDir      string
	OutputDir     string
	SweepSchedule string // cron expression
	RunOnStart    bool
}

// DictionaryConfig points at the merchant dictionary; empty Path means the
// embedded default table.
type DictionaryConfig struct {
	Path string
}

type ObservabilityConfig struct {
	MetricsEnabled bool
	MetricsPort    int
}

type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Worker: WorkerConfig{
			InputDir:      getEnv("WORKER_INPUT_DIR", "./transcripts"),
			OutputDir:     getEnv("WORKER_OUTPUT_DIR", "./reports"),
			SweepSchedule: getEnv("WORKER_SWEEP_SCHEDULE", "*/5 * * * *"),
			RunOnStart:    getEnvAsBool("WORKER_RUN_ON_START", true),
		},
		Dictionary: DictionaryConfig{
			Path: getEnv("DICTIONARY_PATH", ""),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
			MetricsPort:    getEnvAsInt("METRICS_PORT", 9090),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if _, err := cfg.Logging.SlogLevel(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SlogLevel maps the configured level name onto slog's levels.
func (c *LoggingConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.Level)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
