package sysclock

import (
	"time"

	"github.com/WoLfulus/gotimer/internal/port/secondary"
)

// clock implements secondary.Clock using the system clock. Values from
// time.Now carry Go's monotonic reading, so the Before/After comparisons
// in the scheduling core are immune to wall clock adjustments.
type clock struct{}

// New returns the system clock.
func New() secondary.Clock {
	return clock{}
}

func (clock) Now() time.Time {
	return time.Now()
}
