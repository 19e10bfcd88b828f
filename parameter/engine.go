package parameter

import "time"

// Loop
const (
	// MaxFrameDelta clamps per-tick dt against hitches
	MaxFrameDelta = 100 * time.Millisecond

	// DefaultFPS is the scheduler rate for the terminal front end
	DefaultFPS = 30

	// SpawnTries is the random sampling budget before exhaustive placement
	SpawnTries = 100

	// ResultScreenDelay holds the result screen before keys are accepted
	ResultScreenDelay = 500 * time.Millisecond
)

// Session events
const (
	// EventQueueSize is the ring capacity, must be a power of two
	EventQueueSize = 64
	// EventBufferMask wraps ring indices
	EventBufferMask = EventQueueSize - 1
)
