package ring

// DoubleRange runs both cursors over [0, 2N) and maps them onto slot c mod N.
//
// Equal cursors mean empty. Cursors exactly N apart sit on opposite laps of
// the doubled range at the same physical slot, which means full. No slot is
// wasted and no counter is stored.
type DoubleRange struct {
	N int
}

func (d DoubleRange) Name() string    { return "DoubleRange" }
func (d DoubleRange) Capacity() int   { return d.N }
func (d DoubleRange) MaxLen() int     { return d.N }
func (d DoubleRange) Initial() Cursor { return 0 }

// Slot folds the upper lap onto the lower one.
func (d DoubleRange) Slot(c Cursor) int {
	i := int(c)
	if i >= d.N {
		i -= d.N
	}
	return i
}

// Advance increments c, wrapping 2N back to 0.
func (d DoubleRange) Advance(c Cursor) Cursor {
	c++
	if int(c) == 2*d.N {
		c = 0
	}
	return c
}

func (d DoubleRange) Empty(read, write Cursor) bool {
	return write == read
}

func (d DoubleRange) Full(read, write Cursor) bool {
	diff := int(write - read)
	if diff < 0 {
		diff = -diff
	}
	return diff == d.N
}

func (d DoubleRange) Count(read, write Cursor) int {
	c := int(write - read)
	if c < 0 {
		c += 2 * d.N
	}
	return c
}

func (d DoubleRange) Valid(read, write Cursor) bool {
	return inRange(read, 2*d.N) && inRange(write, 2*d.N)
}

func (d DoubleRange) PushCursors(read, write Cursor) (int, Cursor, Cursor) {
	return storeThenAdvance(d, read, write)
}

func (d DoubleRange) PullCursors(read, write Cursor) (int, Cursor, Cursor) {
	return takeThenAdvance(d, read, write)
}

// BackwardDoubleRange is DoubleRange with cursors that decrement, wrapping
// 0 to 2N-1. Both cursors start at 2N-1, so the slots are filled from N-1
// down to 0.
type BackwardDoubleRange struct {
	N int
}

func (b BackwardDoubleRange) Name() string    { return "BackwardDoubleRange" }
func (b BackwardDoubleRange) Capacity() int   { return b.N }
func (b BackwardDoubleRange) MaxLen() int     { return b.N }
func (b BackwardDoubleRange) Initial() Cursor { return Cursor(2*b.N - 1) }

func (b BackwardDoubleRange) Slot(c Cursor) int {
	return DoubleRange(b).Slot(c)
}

func (b BackwardDoubleRange) Advance(c Cursor) Cursor {
	if c == 0 {
		c = Cursor(2 * b.N)
	}
	return c - 1
}

func (b BackwardDoubleRange) Empty(read, write Cursor) bool {
	return DoubleRange(b).Empty(read, write)
}

func (b BackwardDoubleRange) Full(read, write Cursor) bool {
	return DoubleRange(b).Full(read, write)
}

// Count mirrors DoubleRange.Count: counting down, read is usually ahead.
func (b BackwardDoubleRange) Count(read, write Cursor) int {
	c := int(read - write)
	if c < 0 {
		c += 2 * b.N
	}
	return c
}

func (b BackwardDoubleRange) Valid(read, write Cursor) bool {
	return DoubleRange(b).Valid(read, write)
}

func (b BackwardDoubleRange) PushCursors(read, write Cursor) (int, Cursor, Cursor) {
	return storeThenAdvance(b, read, write)
}

func (b BackwardDoubleRange) PullCursors(read, write Cursor) (int, Cursor, Cursor) {
	return takeThenAdvance(b, read, write)
}

func inRange(c Cursor, limit int) bool {
	return c >= 0 && int(c) < limit
}
