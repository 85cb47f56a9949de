package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/WoLfulus/gotimer/internal/port/primary"
)

// Worker drives tick passes at a fixed interval on its own goroutine.
// Pacing is self-correcting: each sleep is the configured interval minus
// the time the pass itself took, so a pass that overruns the interval
// starts the next one immediately instead of compounding drift.
// It respects context cancellation for graceful shutdown.
type Worker struct {
	service      primary.TimerService
	tickInterval time.Duration
	logger       *zap.Logger
}

// New creates a Worker that ticks the service at the given interval.
func New(
	service primary.TimerService,
	tickInterval time.Duration,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		service:      service,
		tickInterval: tickInterval,
		logger:       logger.Named("worker"),
	}
}

// Run starts the tick loop. It blocks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("worker started",
		zap.Duration("tick_interval", w.tickInterval),
	)

	for {
		if err := ctx.Err(); err != nil {
			w.logger.Info("worker shutting down")
			return err
		}

		passStart := time.Now()
		w.service.Tick()

		sleep := w.tickInterval - time.Since(passStart)
		if sleep < 0 {
			sleep = 0
		}

		pause := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			pause.Stop()
			w.logger.Info("worker shutting down")
			return ctx.Err()
		case <-pause.C:
		}
	}
}
