package ring

// SlotSacrifice is the textbook ring: cursors run over [0, N) and one slot
// is always left free, so equal cursors can only mean empty.
//
// Usable capacity is N-1. With N == 1 the queue is permanently full.
type SlotSacrifice struct {
	N int
}

func (s SlotSacrifice) Name() string      { return "SlotSacrifice" }
func (s SlotSacrifice) Capacity() int     { return s.N }
func (s SlotSacrifice) MaxLen() int       { return s.N - 1 }
func (s SlotSacrifice) Initial() Cursor   { return 0 }
func (s SlotSacrifice) Slot(c Cursor) int { return int(c) }

func (s SlotSacrifice) Advance(c Cursor) Cursor {
	return Cursor((int(c) + 1) % s.N)
}

func (s SlotSacrifice) Empty(read, write Cursor) bool {
	return write == read
}

func (s SlotSacrifice) Full(read, write Cursor) bool {
	return s.Advance(write) == read
}

func (s SlotSacrifice) Count(read, write Cursor) int {
	if write >= read {
		return int(write - read)
	}
	return s.N + int(write-read)
}

func (s SlotSacrifice) Valid(read, write Cursor) bool {
	return inRange(read, s.N) && inRange(write, s.N)
}

func (s SlotSacrifice) PushCursors(read, write Cursor) (int, Cursor, Cursor) {
	return storeThenAdvance(s, read, write)
}

func (s SlotSacrifice) PullCursors(read, write Cursor) (int, Cursor, Cursor) {
	return takeThenAdvance(s, read, write)
}
