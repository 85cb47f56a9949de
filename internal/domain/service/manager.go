package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/WoLfulus/gotimer/internal/domain/entity"
	"github.com/WoLfulus/gotimer/internal/port/secondary"
)

// Manager owns a collection of timers keyed by id and drives their
// lifecycle: registration, deferred cancellation, tick passes and reaping.
//
// The registry mutex guards the collection; tick passes are serialized by
// a separate mutex and release the registry mutex while callbacks run, so
// a callback may register or cancel timers on its own manager without
// deadlocking. Calling Tick from inside a callback is not supported.
type Manager struct {
	clock  secondary.Clock
	logger *zap.Logger

	tickMu sync.Mutex // serializes tick passes

	mu      sync.Mutex // guards the fields below
	nextID  entity.ID
	timers  map[entity.ID]*entity.Timer
	pending []entity.ID
}

// NewManager creates an empty Manager using the given time source.
func NewManager(clock secondary.Clock, logger *zap.Logger) *Manager {
	return &Manager{
		clock:  clock,
		logger: logger.Named("timer-manager"),
		timers: make(map[entity.ID]*entity.Timer),
	}
}

// Timeout schedules fn to run once after delay and returns the timer's id.
func (m *Manager) Timeout(fn func(), delay time.Duration) entity.ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addLocked(entity.NewOneShot(fn, delay, m.clock.Now()))
}

// Interval schedules fn to run every period until cancelled.
func (m *Manager) Interval(fn func(), period time.Duration) entity.ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addLocked(entity.NewInterval(fn, period, m.clock.Now()))
}

// Repeat schedules fn to run count times, once per period. A non-positive
// count creates nothing and returns entity.Invalid; a count of one is a
// plain timeout.
func (m *Manager) Repeat(fn func(), period time.Duration, count int) entity.ID {
	if count <= 0 {
		return entity.Invalid
	}
	if count == 1 {
		return m.Timeout(fn, period)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addLocked(entity.NewRepeat(fn, period, count, m.clock.Now()))
}

// Cancel prevents future firings of the timer. A timer cancelled between
// passes is excluded from the next pass entirely; a timer cancelled from
// inside a callback mid-pass may still fire in that pass but never after
// it. Invalid and already-reaped ids are ignored.
func (m *Manager) Cancel(id entity.ID) {
	if id == entity.Invalid {
		return
	}

	m.mu.Lock()
	m.pending = append(m.pending, id)
	m.mu.Unlock()

	m.logger.Debug("timer cancelled", zap.Uint64("timer_id", uint64(id)))
}

// Tick performs one pass: every timer stored at the start of the pass —
// minus those with a cancellation already pending — is evaluated against
// the current time, then finished and cancelled timers are removed from
// the collection. Timers registered by a callback during the pass are not
// visited until the next one.
func (m *Manager) Tick() {
	m.tickMu.Lock()
	defer m.tickMu.Unlock()

	m.mu.Lock()
	skip := make(map[entity.ID]struct{}, len(m.pending))
	for _, id := range m.pending {
		skip[id] = struct{}{}
	}
	ids := make([]entity.ID, 0, len(m.timers))
	snapshot := make([]*entity.Timer, 0, len(m.timers))
	for id, t := range m.timers {
		if _, cancelled := skip[id]; cancelled {
			continue
		}
		ids = append(ids, id)
		snapshot = append(snapshot, t)
	}
	m.mu.Unlock()

	var finished []entity.ID
	for i, t := range snapshot {
		if t.Tick(m.clock.Now()) {
			finished = append(finished, ids[i])
		}
	}

	m.mu.Lock()
	m.pending = append(m.pending, finished...)
	removed := 0
	for _, id := range m.pending {
		if _, ok := m.timers[id]; ok {
			delete(m.timers, id)
			removed++
		}
	}
	m.pending = m.pending[:0]
	m.mu.Unlock()

	if removed > 0 {
		m.logger.Debug("timers reaped", zap.Int("count", removed))
	}
}

// Clear removes every timer and resets the id counter. It waits for any
// tick pass in flight, so once it returns no previously registered timer
// fires again. Must not be called from inside a callback.
func (m *Manager) Clear() {
	m.tickMu.Lock()
	defer m.tickMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID = 0
	m.timers = make(map[entity.ID]*entity.Timer)
	m.pending = m.pending[:0]
}

// Len returns the number of live timers.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// addLocked mints an id and stores the timer. Callers hold m.mu.
func (m *Manager) addLocked(t *entity.Timer) entity.ID {
	id := m.mintLocked()
	m.timers[id] = t

	m.logger.Debug("timer registered",
		zap.Uint64("timer_id", uint64(id)),
		zap.Stringer("kind", t.Kind()),
	)

	return id
}

// mintLocked returns the next unused id, skipping the Invalid sentinel and
// any id still held by a live timer after counter wraparound.
func (m *Manager) mintLocked() entity.ID {
	for {
		id := m.nextID
		m.nextID++
		if id == entity.Invalid {
			continue
		}
		if _, exists := m.timers[id]; !exists {
			return id
		}
	}
}
