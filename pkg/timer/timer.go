package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/WoLfulus/gotimer/internal/adapter/primary/worker"
	"github.com/WoLfulus/gotimer/internal/adapter/secondary/sysclock"
	"github.com/WoLfulus/gotimer/internal/domain"
	"github.com/WoLfulus/gotimer/internal/domain/entity"
	"github.com/WoLfulus/gotimer/internal/domain/service"
	"github.com/WoLfulus/gotimer/internal/port/primary"
	"github.com/WoLfulus/gotimer/internal/port/secondary"
)

// ID identifies a scheduled timer. Callers hold ids, never timers: the
// manager keeps sole ownership of every timer it creates, so a timer can be
// reaped without invalidating any caller-held value.
type ID uint64

// Invalid is the sentinel id returned when no timer was created (for
// example by Repeat with a non-positive count). Cancelling it is a no-op.
const Invalid = ID(entity.Invalid)

// Clock is the time source timers are evaluated against. The default
// implementation wraps time.Now, whose values carry a monotonic reading.
type Clock = secondary.Clock

// Config holds configuration for a Manager.
type Config struct {
	// TickInterval is the pacing of the background loop started by
	// Start when no explicit interval is given. Defaults to 250ms.
	TickInterval time.Duration

	// Clock overrides the time source. Defaults to the system clock.
	Clock Clock

	// Logger (if nil, a default logger will be created)
	Logger *zap.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TickInterval: domain.DefaultTickInterval,
	}
}

// Manager schedules in-process callbacks: one-shot timeouts, infinitely
// recurring intervals and bounded repeats. Ticking can be driven manually
// with Tick or from a background goroutine via Start.
//
// All methods are safe for concurrent use. Callbacks run inside tick
// passes and may register or cancel timers on their own manager; they must
// not call Tick, Clear or Stop.
type Manager struct {
	service      *service.Manager
	logger       *zap.Logger
	tickInterval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

var _ primary.TimerService = (*service.Manager)(nil)

// New creates a Manager with the given configuration.
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Create logger if not provided
	logger := cfg.Logger
	if logger == nil {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
	}

	clock := cfg.Clock
	if clock == nil {
		clock = sysclock.New()
	}

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = domain.DefaultTickInterval
	}

	return &Manager{
		service:      service.NewManager(clock, logger),
		logger:       logger,
		tickInterval: tickInterval,
	}, nil
}

// Timeout schedules fn to run once, delay from now, and returns its id.
// A nil fn creates an inert timer that is reaped on the next pass.
func (m *Manager) Timeout(fn func(), delay time.Duration) ID {
	return ID(m.service.Timeout(fn, delay))
}

// Interval schedules fn to run every period until cancelled. If ticking is
// coarser than the period, the callback fires once per elapsed period
// boundary to catch up.
func (m *Manager) Interval(fn func(), period time.Duration) ID {
	return ID(m.service.Interval(fn, period))
}

// Repeat schedules fn to run exactly count times, once per period. A
// non-positive count creates nothing and returns Invalid.
func (m *Manager) Repeat(fn func(), period time.Duration, count int) ID {
	return ID(m.service.Repeat(fn, period, count))
}

// Cancel prevents future firings of the given timer. It is idempotent and
// ignores Invalid and already-completed ids. A timer cancelled between
// passes never fires again; cancelling from inside a callback takes effect
// no earlier than the end of the tick pass in flight.
func (m *Manager) Cancel(id ID) {
	m.service.Cancel(entity.ID(id))
}

// Tick performs one pass manually: every timer is evaluated against the
// current time and finished ones are reaped. Use it when the application
// has its own loop to drive the manager from; otherwise see Start.
func (m *Manager) Tick() {
	m.service.Tick()
}

// Clear removes every timer and resets id generation. It waits for any
// tick pass in flight; once it returns, no previously registered timer
// fires again. Must not be called from inside a timer callback.
func (m *Manager) Clear() {
	m.service.Clear()
}

// Len returns the number of live timers.
func (m *Manager) Len() int {
	return m.service.Len()
}

// Start begins ticking from a background goroutine paced at tickInterval
// (the configured default when non-positive). At most one loop runs per
// manager; calling Start while one is running is a no-op.
func (m *Manager) Start(tickInterval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done != nil {
		return
	}

	if tickInterval <= 0 {
		tickInterval = m.tickInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := worker.New(m.service, tickInterval, m.logger)

	done := make(chan struct{})
	m.cancel = cancel
	m.done = done

	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
}

// Stop halts the background loop and blocks until its goroutine has
// exited, bounded by however long the in-flight tick pass takes. Calling
// Stop when no loop is running is a no-op. Must not be called from inside
// a timer callback.
func (m *Manager) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Wait blocks until the background loop exits (that is, until another
// goroutine calls Stop). It returns immediately if no loop was started.
func (m *Manager) Wait() {
	m.mu.Lock()
	done := m.done
	m.mu.Unlock()

	if done != nil {
		<-done
	}
}
