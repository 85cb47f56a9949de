package entity

import "time"

// ID uniquely identifies a timer within a manager. Ids are minted by the
// manager and never reused while the timer is alive.
type ID uint64

// Invalid is the sentinel id returned when no timer was created.
// Cancelling it is a no-op.
const Invalid = ^ID(0)

// Kind selects a timer's firing policy.
type Kind int

const (
	// KindOneShot fires exactly once after its delay.
	KindOneShot Kind = iota

	// KindInterval fires every period, forever.
	KindInterval

	// KindRepeat fires a fixed number of times, once per period.
	KindRepeat
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindOneShot:
		return "one-shot"
	case KindInterval:
		return "interval"
	case KindRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Timer represents one scheduled callback together with its firing policy.
// A timer is owned exclusively by the manager that created it; callers only
// ever hold its ID.
type Timer struct {
	fn        func()
	period    time.Duration
	next      time.Time
	kind      Kind
	remaining int
}

// NewOneShot creates a timer that fires once, delay from now.
func NewOneShot(fn func(), delay time.Duration, now time.Time) *Timer {
	return &Timer{fn: fn, period: delay, next: now.Add(delay), kind: KindOneShot}
}

// NewInterval creates a timer that fires every period, forever.
func NewInterval(fn func(), period time.Duration, now time.Time) *Timer {
	return &Timer{fn: fn, period: period, next: now.Add(period), kind: KindInterval}
}

// NewRepeat creates a timer that fires count times, once per period.
// Counts below two are the manager's concern and never reach here.
func NewRepeat(fn func(), period time.Duration, count int, now time.Time) *Timer {
	return &Timer{fn: fn, period: period, next: now.Add(period), kind: KindRepeat, remaining: count}
}

// Kind returns the timer's firing policy.
func (t *Timer) Kind() Kind {
	return t.kind
}

// fire invokes the callback and advances the deadline by exactly one
// period. Advancing from the previous deadline rather than from now keeps
// recurring timers drift-free.
func (t *Timer) fire() {
	t.fn()
	t.next = t.next.Add(t.period)
}

// Tick evaluates the timer against now, invoking the callback once for
// every elapsed period boundary (catch-up). It reports whether the timer
// is finished and should be reaped. Called only by the owning manager;
// tick passes are serialized.
func (t *Timer) Tick(now time.Time) bool {
	if t.fn == nil {
		return true
	}
	if now.Before(t.next) {
		return false
	}

	switch t.kind {
	case KindOneShot:
		t.fire()
		return true

	case KindInterval:
		for !t.next.After(now) {
			t.fire()
			if t.period <= 0 {
				// A non-positive period would never advance next past now.
				break
			}
		}
		return false

	default: // KindRepeat
		if t.remaining <= 0 {
			// Reachable only if a finished timer is ticked again before
			// being reaped; treated as a finished no-op.
			return true
		}
		for !t.next.After(now) {
			t.fire()
			t.remaining--
			if t.remaining == 0 {
				return true
			}
			if t.period <= 0 {
				break
			}
		}
		return false
	}
}
