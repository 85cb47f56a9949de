package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/WoLfulus/gotimer/internal/config"
	"github.com/WoLfulus/gotimer/pkg/timer"
)

const appName = "gotimer"

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Build the dependency injection container.
	c, err := buildContainer()
	if err != nil {
		return fmt.Errorf("building container: %w", err)
	}

	// Invoke the application, resolving all dependencies and starting the loop.
	return c.Invoke(func(
		mgr *timer.Manager,
		cfg *config.Config,
		logger *zap.Logger,
	) {
		defer func() {
			_ = logger.Sync()
		}()

		logger.Info("starting application",
			zap.String("app", appName),
			zap.String("version", version),
			zap.String("environment", cfg.Environment),
			zap.Duration("tick_interval", cfg.TickInterval),
		)

		// Demonstration timers: one interval, one timeout, one bounded
		// repeat, and a repeat cancelled mid-flight by a timeout.
		mgr.Interval(func() {
			logger.Info("happens every 5 seconds")
		}, 5*time.Second)

		mgr.Timeout(func() {
			logger.Info("happens once after 10 seconds")
		}, 10*time.Second)

		mgr.Repeat(func() {
			logger.Info("happens 5 times every 3 seconds")
		}, 3*time.Second, 5)

		id := mgr.Repeat(func() {
			logger.Info("scheduled for 5 runs but cancelled after two")
		}, 3*time.Second, 5)

		mgr.Timeout(func() {
			logger.Info("cancelling timer", zap.Uint64("timer_id", uint64(id)))
			mgr.Cancel(id)
		}, 8*time.Second)

		// Start the background tick loop.
		mgr.Start(cfg.TickInterval)

		// Wait for shutdown signal.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))

		// Graceful shutdown: Stop joins the loop goroutine.
		mgr.Stop()
		logger.Info("shutdown complete")
	})
}
