package ring

import "errors"

var (
	// ErrQueueFull is returned by Push when the queue has no free slot.
	ErrQueueFull = errors.New("ring: queue full")

	// ErrQueueEmpty is returned by Pull when the queue holds no value.
	ErrQueueEmpty = errors.New("ring: queue empty")

	// ErrInvalidCapacity is returned when a queue is requested with fewer than one slot.
	ErrInvalidCapacity = errors.New("ring: capacity must be at least 1")

	// ErrUnknownStrategy is returned when a strategy name or Kind is not recognised.
	ErrUnknownStrategy = errors.New("ring: unknown strategy")
)
