package ring

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach. Each Push/Pull performs a
// non-blocking channel operation via select with default. A channel cannot
// be peeked, so Peek receives one value into a held head that Pull hands
// out first.
type ChannelQueue[T any] struct {
	ch   chan T
	head T
	held bool
}

// NewChannel creates a ChannelQueue holding at most size values.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

// Push adds v to the queue.
// Returns ErrQueueFull if the queue is full (non-blocking).
func (q *ChannelQueue[T]) Push(v T) error {
	if q.IsFull() {
		return ErrQueueFull
	}
	select {
	case q.ch <- v:
		return nil
	default:
		return ErrQueueFull
	}
}

// Pull removes and returns the oldest value.
// Returns ErrQueueEmpty if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) Pull() (T, error) {
	var zero T
	if q.held {
		v := q.head
		q.head, q.held = zero, false
		return v, nil
	}
	select {
	case v := <-q.ch:
		return v, nil
	default:
		return zero, ErrQueueEmpty
	}
}

// Peek returns the oldest value without removing it from the queue.
func (q *ChannelQueue[T]) Peek() (T, bool) {
	if !q.held {
		select {
		case v := <-q.ch:
			q.head, q.held = v, true
		default:
			var zero T
			return zero, false
		}
	}
	return q.head, true
}

func (q *ChannelQueue[T]) IsEmpty() bool { return q.Len() == 0 }
func (q *ChannelQueue[T]) IsFull() bool  { return q.Len() == q.Cap() }

// Len returns the current number of items in the queue.
func (q *ChannelQueue[T]) Len() int {
	n := len(q.ch)
	if q.held {
		n++
	}
	return n
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
