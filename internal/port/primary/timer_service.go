package primary

import (
	"time"

	"github.com/WoLfulus/gotimer/internal/domain/entity"
)

// TimerService defines the primary port for timer operations exposed to
// driving adapters (the background worker, the public facade).
type TimerService interface {
	// Timeout schedules fn to run once after delay and returns the
	// timer's id.
	Timeout(fn func(), delay time.Duration) entity.ID

	// Interval schedules fn to run every period until cancelled.
	Interval(fn func(), period time.Duration) entity.ID

	// Repeat schedules fn to run count times, once per period. A
	// non-positive count creates nothing and returns entity.Invalid.
	Repeat(fn func(), period time.Duration, count int) entity.ID

	// Cancel marks a timer for removal. The timer will not fire after
	// the tick pass in flight (if any) completes.
	Cancel(id entity.ID)

	// Tick evaluates every timer against the current time and reaps
	// finished and cancelled ones.
	Tick()
}
