package secondary

import "time"

// Clock defines the secondary port for the time source used in due-time
// computation. Implementations should return times carrying a monotonic
// reading so that wall clock adjustments do not affect scheduling.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
