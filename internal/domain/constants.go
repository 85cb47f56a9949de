package domain

import "time"

const (
	// DefaultTickInterval is the pacing of the background tick loop when
	// the caller does not choose one.
	DefaultTickInterval = 250 * time.Millisecond
)
