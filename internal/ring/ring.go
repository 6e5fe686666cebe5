package ring

import (
	"fmt"
	"strings"
)

// Slot is one storage cell as seen through Snapshot.
type Slot[T any] struct {
	Value    T
	Occupied bool
}

// Ring is a fixed-capacity FIFO queue whose full/empty bookkeeping is
// delegated to the strategy S. Values never move; only the cursors do.
//
// WARNING: Ring is not safe for concurrent use.
type Ring[T any, S Strategy] struct {
	strategy S
	slots    []Slot[T]
	read     Cursor
	write    Cursor

	selfCheck bool
	keepStale bool
	trace     func(Event)
}

// New creates an empty Ring driven by strategy s.
//
// It panics if s has fewer than one slot; NewQueue reports the same
// condition as ErrInvalidCapacity instead.
func New[T any, S Strategy](s S, opts ...Option) *Ring[T, S] {
	if s.Capacity() < 1 {
		panic(fmt.Sprintf("ring: %s capacity %d, must be at least 1", s.Name(), s.Capacity()))
	}
	o := applyOptions(opts...)

	r := &Ring[T, S]{
		strategy:  s,
		slots:     make([]Slot[T], s.Capacity()),
		read:      s.Initial(),
		write:     s.Initial(),
		selfCheck: o.selfCheck,
		keepStale: o.keepStale,
		trace:     o.trace,
	}
	r.verify("new")
	return r
}

// Push stores v at the write slot and advances the write cursor.
// Returns ErrQueueFull if the queue is full; the queue is left unchanged.
func (r *Ring[T, S]) Push(v T) error {
	if r.strategy.Full(r.read, r.write) {
		return ErrQueueFull
	}

	slot, read, write := r.strategy.PushCursors(r.read, r.write)
	r.slots[slot] = Slot[T]{Value: v, Occupied: true}
	r.read, r.write = read, write

	r.verify("push")
	r.emit(OpPush, slot)
	return nil
}

// Pull takes the value at the read slot, clears the slot and advances the
// read cursor. Returns ErrQueueEmpty if the queue is empty.
func (r *Ring[T, S]) Pull() (T, error) {
	if r.strategy.Empty(r.read, r.write) {
		var zero T
		return zero, ErrQueueEmpty
	}

	slot, read, write := r.strategy.PullCursors(r.read, r.write)
	v := r.slots[slot].Value
	if !r.keepStale {
		r.slots[slot] = Slot[T]{}
	}
	r.read, r.write = read, write

	r.verify("pull")
	r.emit(OpPull, slot)
	return v, nil
}

// Peek returns the value Pull would return, without removing it.
func (r *Ring[T, S]) Peek() (T, bool) {
	if r.strategy.Empty(r.read, r.write) {
		var zero T
		return zero, false
	}
	return r.slots[r.strategy.Slot(r.read)].Value, true
}

func (r *Ring[T, S]) IsEmpty() bool {
	return r.strategy.Empty(r.read, r.write)
}

func (r *Ring[T, S]) IsFull() bool {
	return r.strategy.Full(r.read, r.write)
}

// Len returns the cursor-derived count.
func (r *Ring[T, S]) Len() int {
	return r.strategy.Count(r.read, r.write)
}

// Cap returns the effective maximum length: N, or N-1 for SlotSacrifice.
func (r *Ring[T, S]) Cap() int {
	return r.strategy.MaxLen()
}

// Capacity returns the number of physical slots.
func (r *Ring[T, S]) Capacity() int {
	return len(r.slots)
}

// Strategy returns the cursor strategy driving r.
func (r *Ring[T, S]) Strategy() S {
	return r.strategy
}

// ReadSlot returns the physical slot the read cursor designates.
// Returns false while the cursor is None.
func (r *Ring[T, S]) ReadSlot() (int, bool) {
	return r.slotOf(r.read)
}

// WriteSlot returns the physical slot the write cursor designates.
// Returns false while the cursor is None.
func (r *Ring[T, S]) WriteSlot() (int, bool) {
	return r.slotOf(r.write)
}

func (r *Ring[T, S]) slotOf(c Cursor) (int, bool) {
	if c == None {
		return -1, false
	}
	return r.strategy.Slot(c), true
}

// Cursors returns the raw strategy-encoded cursors.
func (r *Ring[T, S]) Cursors() (read, write Cursor) {
	return r.read, r.write
}

// Snapshot returns a copy of every slot in physical order.
func (r *Ring[T, S]) Snapshot() []Slot[T] {
	out := make([]Slot[T], len(r.slots))
	copy(out, r.slots)
	return out
}

// Occupied counts occupied slots by scanning storage. It equals Len unless
// WithoutClear is in effect.
func (r *Ring[T, S]) Occupied() int {
	n := 0
	for i := range r.slots {
		if r.slots[i].Occupied {
			n++
		}
	}
	return n
}

// Reset empties the queue and returns both cursors to their initial value.
func (r *Ring[T, S]) Reset() {
	clear(r.slots)
	r.read = r.strategy.Initial()
	r.write = r.strategy.Initial()
	r.verify("reset")
}

// String renders the state as <Name(N) write=W read=R len=L data=[...]>,
// with _ for unoccupied slots and the raw cursor values.
func (r *Ring[T, S]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range r.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.Occupied {
			fmt.Fprint(&b, s.Value)
		} else {
			b.WriteByte('_')
		}
	}
	b.WriteByte(']')

	return fmt.Sprintf("<%s(%d) write=%d read=%d len=%d data=%s>",
		r.strategy.Name(), len(r.slots), r.write, r.read, r.Len(), b.String())
}

func (r *Ring[T, S]) emit(op Op, slot int) {
	if r.trace != nil {
		r.trace(Event{Op: op, Slot: slot, Len: r.Len()})
	}
}

// verify is a no-op unless WithSelfCheck was given. Any failure is an
// implementation bug, so it panics.
func (r *Ring[T, S]) verify(op string) {
	if !r.selfCheck {
		return
	}
	if err := r.check(); err != nil {
		panic(fmt.Sprintf("ring: after %s: %v: %s", op, err, r))
	}
}

// check compares the cursor-derived state against a direct occupancy scan.
func (r *Ring[T, S]) check() error {
	s := r.strategy
	if !s.Valid(r.read, r.write) {
		return fmt.Errorf("cursors read=%d write=%d outside domain", r.read, r.write)
	}

	count := s.Count(r.read, r.write)
	if count < 0 || count > s.MaxLen() {
		return fmt.Errorf("count %d outside [0, %d]", count, s.MaxLen())
	}
	if occupied := r.Occupied(); occupied != count {
		return fmt.Errorf("count %d != %d occupied slots", count, occupied)
	}
	if empty := s.Empty(r.read, r.write); empty != (count == 0) {
		return fmt.Errorf("empty=%t with count %d", empty, count)
	}
	if full := s.Full(r.read, r.write); full != (count == s.MaxLen()) {
		return fmt.Errorf("full=%t with count %d of %d", full, count, s.MaxLen())
	}
	return nil
}
