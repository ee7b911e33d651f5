package starter

import "errors"

// Common errors
var (
	// ErrAlreadyStarted is returned when Start is called on a running runner
	ErrAlreadyStarted = errors.New("runner already started")

	// ErrNotStarted is returned when Stop is called before Start
	ErrNotStarted = errors.New("runner not started")

	// ErrTimeout is returned by AwaitWithTimeout when the future does not
	// complete in time
	ErrTimeout = errors.New("timed out waiting for future completion")

	// ErrParsingConfig is returned when environment parsing fails
	ErrParsingConfig = errors.New("failed to parse starter config")

	// ErrInvalidMaxConcurrent is returned when the concurrency limit is below 1
	ErrInvalidMaxConcurrent = errors.New("max concurrent operations must be at least 1")

	// ErrInvalidQueueCapacity is returned when the queue capacity is below 1
	ErrInvalidQueueCapacity = errors.New("queue capacity must be at least 1")

	// ErrInvalidDrainTimeout is returned when the drain timeout is not positive
	ErrInvalidDrainTimeout = errors.New("drain timeout must be positive")
)
