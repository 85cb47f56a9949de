package config

import (
	"os"
	"testing"
	"time"
)

func TestNew_defaults(t *testing.T) {
	// Clear environment to test defaults
	envKeys := []string{"TICK_INTERVAL", "ENVIRONMENT", "LOG_LEVEL"}
	for _, key := range envKeys {
		os.Unsetenv(key)
	}

	cfg := New()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"TickInterval", cfg.TickInterval, 250 * time.Millisecond},
		{"Environment", cfg.Environment, "local"},
		{"LogLevel", cfg.LogLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNew_fromEnvironment(t *testing.T) {
	t.Setenv("TICK_INTERVAL", "1s")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := New()

	if cfg.TickInterval != 1*time.Second {
		t.Fatalf("expected 1s, got %v", cfg.TickInterval)
	}
	if cfg.Environment != "production" {
		t.Fatalf("expected production, got %s", cfg.Environment)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %s", cfg.LogLevel)
	}
}

func TestNew_invalidDurationFallsBack(t *testing.T) {
	t.Setenv("TICK_INTERVAL", "not-a-duration")

	cfg := New()

	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("expected the default tick interval, got %v", cfg.TickInterval)
	}
}
