// Package ring provides fixed-capacity ring queues that differ only in how
// they tell a full queue from an empty one.
//
// This package offers five cursor strategies behind one Queue contract:
//   - DoubleRange: cursors run over [0, 2N); full when they sit N apart
//   - BackwardDoubleRange: DoubleRange with decrementing cursors
//   - SlotSacrifice: classic design, one slot left unused (capacity N-1)
//   - Sentinel: full capacity, cursors hold None while the queue is empty
//   - BackwardSentinel: Sentinel with decrementing cursors
//
// A ChannelQueue wraps a buffered channel behind the same contract and is
// used as a reference implementation.
//
// # Ownership
//
// A queue has exactly one owner. None of the implementations are safe for
// concurrent use; callers sharing a queue must hold their own lock around
// every call.
//
// Draining direction only changes which physical slots are visited. Values
// always come out of Pull in the order they went into Push.
package ring

import "fmt"

// Queue is a bounded FIFO queue.
//
// Implementations never block: Push fails with ErrQueueFull when there is
// no room and Pull fails with ErrQueueEmpty when there is nothing to take.
type Queue[T any] interface {
	// Push appends v at the tail of the queue.
	// Returns ErrQueueFull if the queue is full.
	Push(v T) error

	// Pull removes and returns the value at the head of the queue.
	// Returns ErrQueueEmpty if the queue is empty.
	Pull() (T, error)

	// Peek returns the value at the head without removing it.
	// Returns false if the queue is empty.
	Peek() (T, bool)

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// IsFull reports whether Len() == Cap().
	IsFull() bool

	// Len returns the number of queued values.
	Len() int

	// Cap returns the largest Len() the queue can reach.
	Cap() int
}

// RingQueue is a Queue backed by a Ring, with the read-only views a
// renderer or debugger needs.
type RingQueue[T any] interface {
	Queue[T]
	fmt.Stringer

	// Capacity returns the number of physical slots.
	Capacity() int

	// Snapshot returns a copy of every slot in physical order.
	Snapshot() []Slot[T]

	// ReadSlot and WriteSlot return the physical slots the cursors
	// designate, or false while a cursor is None.
	ReadSlot() (int, bool)
	WriteSlot() (int, bool)

	// Reset empties the queue.
	Reset()
}
