package config

import (
	"os"
	"time"

	"github.com/WoLfulus/gotimer/internal/domain"
)

// Config holds all configuration values for the demo daemon.
type Config struct {
	// Scheduler
	TickInterval time.Duration

	// Application
	Environment string
	LogLevel    string
}

// New creates a Config populated from environment variables with sensible defaults.
func New() *Config {
	return &Config{
		TickInterval: getDurationEnv("TICK_INTERVAL", domain.DefaultTickInterval),
		Environment:  getEnv("ENVIRONMENT", "local"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
