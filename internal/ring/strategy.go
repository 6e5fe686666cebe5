package ring

// Cursor is a strategy-encoded read or write position.
//
// Its domain depends on the strategy: [0, 2N) for the double-range
// strategies, [0, N) for the others, plus None for the sentinel strategies.
type Cursor int

// None marks a cursor that designates no slot. Only the sentinel strategies
// produce it, and only while the queue is empty; Advance never returns it.
const None Cursor = -1

// Strategy is the cursor policy plugged into a Ring.
//
// A strategy is a small value holding the physical capacity N. It owns the
// whole cursor encoding: Ring only stores the two cursors and asks the
// strategy where values go, when the queue is full or empty, and how many
// values it holds.
type Strategy interface {
	// Name identifies the strategy in logs and state dumps.
	Name() string

	// Capacity returns the number of physical slots N.
	Capacity() int

	// MaxLen returns the largest count the strategy can represent.
	MaxLen() int

	// Initial returns the cursor value both cursors hold in a fresh queue.
	Initial() Cursor

	// Slot maps a cursor that is not None onto its physical slot index.
	Slot(c Cursor) int

	// Advance moves a cursor one step in the strategy's draining direction.
	Advance(c Cursor) Cursor

	Empty(read, write Cursor) bool
	Full(read, write Cursor) bool
	Count(read, write Cursor) int

	// Valid reports whether both cursors lie inside the strategy's domain.
	Valid(read, write Cursor) bool

	// PushCursors returns the slot the next pushed value is stored in and
	// the cursors after the push. The queue must not be full.
	PushCursors(read, write Cursor) (slot int, nextRead, nextWrite Cursor)

	// PullCursors returns the slot the next pulled value is taken from and
	// the cursors after the pull. The queue must not be empty.
	PullCursors(read, write Cursor) (slot int, nextRead, nextWrite Cursor)
}

// storeThenAdvance is the push transition shared by the strategies whose
// write cursor points at the next free slot.
func storeThenAdvance(s Strategy, read, write Cursor) (int, Cursor, Cursor) {
	return s.Slot(write), read, s.Advance(write)
}

// takeThenAdvance is the matching pull transition.
func takeThenAdvance(s Strategy, read, write Cursor) (int, Cursor, Cursor) {
	return s.Slot(read), s.Advance(read), write
}
