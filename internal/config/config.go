package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/zzpboek/zzptax/internal/logger"
)

// Config holds process-level settings read from the environment.
type Config struct {
	// Rate tables directory; files there add or replace built-in years.
	RatesDir string

	// Output format used when --format is not given.
	DefaultFormat string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment. Callers load any .env
// file first.
func Load() (*Config, error) {
	config := &Config{
		RatesDir:      getEnv("ZZPTAX_RATES_DIR", ""),
		DefaultFormat: getEnv("ZZPTAX_DEFAULT_FORMAT", "console"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if c.RatesDir != "" {
		info, err := os.Stat(c.RatesDir)
		if err != nil {
			return fmt.Errorf("ZZPTAX_RATES_DIR: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("ZZPTAX_RATES_DIR %s is not a directory", c.RatesDir)
		}
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
