package ring

// Sentinel uses all N slots by parking both cursors on None while the queue
// is empty. Otherwise read is the oldest occupied slot and write the newest,
// both inclusive, so equal cursors mean exactly one value.
type Sentinel struct {
	N int
}

func (s Sentinel) Name() string      { return "Sentinel" }
func (s Sentinel) Capacity() int     { return s.N }
func (s Sentinel) MaxLen() int       { return s.N }
func (s Sentinel) Initial() Cursor   { return None }
func (s Sentinel) Slot(c Cursor) int { return int(c) }

func (s Sentinel) Advance(c Cursor) Cursor {
	return Cursor((int(c) + 1) % s.N)
}

func (s Sentinel) Empty(read, write Cursor) bool {
	return read == None
}

func (s Sentinel) Full(read, write Cursor) bool {
	return write != None && s.Advance(write) == read
}

func (s Sentinel) Count(read, write Cursor) int {
	if read == None {
		return 0
	}
	return 1 + (s.N+int(write-read))%s.N
}

func (s Sentinel) Valid(read, write Cursor) bool {
	return sentinelValid(s.N, read, write)
}

func (s Sentinel) PushCursors(read, write Cursor) (int, Cursor, Cursor) {
	return sentinelPush(s, read, write)
}

func (s Sentinel) PullCursors(read, write Cursor) (int, Cursor, Cursor) {
	return sentinelPull(s, read, write)
}

// BackwardSentinel is Sentinel with cursors that decrement, wrapping 0 to
// N-1. The first value after empty still lands in slot 0.
type BackwardSentinel struct {
	N int
}

func (b BackwardSentinel) Name() string      { return "BackwardSentinel" }
func (b BackwardSentinel) Capacity() int     { return b.N }
func (b BackwardSentinel) MaxLen() int       { return b.N }
func (b BackwardSentinel) Initial() Cursor   { return None }
func (b BackwardSentinel) Slot(c Cursor) int { return int(c) }

func (b BackwardSentinel) Advance(c Cursor) Cursor {
	if c == 0 {
		c = Cursor(b.N)
	}
	return c - 1
}

func (b BackwardSentinel) Empty(read, write Cursor) bool {
	return read == None
}

func (b BackwardSentinel) Full(read, write Cursor) bool {
	return write != None && b.Advance(write) == read
}

func (b BackwardSentinel) Count(read, write Cursor) int {
	if read == None {
		return 0
	}
	return 1 + (b.N+int(read-write))%b.N
}

func (b BackwardSentinel) Valid(read, write Cursor) bool {
	return sentinelValid(b.N, read, write)
}

func (b BackwardSentinel) PushCursors(read, write Cursor) (int, Cursor, Cursor) {
	return sentinelPush(b, read, write)
}

func (b BackwardSentinel) PullCursors(read, write Cursor) (int, Cursor, Cursor) {
	return sentinelPull(b, read, write)
}

// sentinelPush leaves None by claiming slot 0 for both cursors; otherwise
// write moves onto the next slot first and the value is stored there.
func sentinelPush(s Strategy, read, write Cursor) (int, Cursor, Cursor) {
	if read == None {
		return 0, 0, 0
	}
	write = s.Advance(write)
	return s.Slot(write), read, write
}

// sentinelPull resets both cursors to None when the last value leaves.
func sentinelPull(s Strategy, read, write Cursor) (int, Cursor, Cursor) {
	slot := s.Slot(read)
	if read == write {
		return slot, None, None
	}
	return slot, s.Advance(read), write
}

// Either both cursors are None or neither is.
func sentinelValid(n int, read, write Cursor) bool {
	if read == None || write == None {
		return read == write
	}
	return inRange(read, n) && inRange(write, n)
}
