package main

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/WoLfulus/gotimer/internal/adapter/secondary/sysclock"
	"github.com/WoLfulus/gotimer/internal/config"
	"github.com/WoLfulus/gotimer/internal/port/secondary"
	"github.com/WoLfulus/gotimer/pkg/timer"
)

func buildContainer() (*dig.Container, error) {
	c := dig.New()

	// --- Configuration ---
	if err := c.Provide(config.New); err != nil {
		return nil, err
	}

	// --- Logger ---
	if err := c.Provide(newLogger); err != nil {
		return nil, err
	}

	// --- Clock ---
	if err := c.Provide(func() secondary.Clock {
		return sysclock.New()
	}); err != nil {
		return nil, err
	}

	// --- Timer manager ---
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger, clock secondary.Clock) (*timer.Manager, error) {
		return timer.New(&timer.Config{
			TickInterval: cfg.TickInterval,
			Clock:        clock,
			Logger:       logger,
		})
	}); err != nil {
		return nil, err
	}

	return c, nil
}
