package ring

// Option configures a Ring using the functional options pattern.
type Option func(*options)

type options struct {
	selfCheck bool
	keepStale bool
	trace     func(Event)
}

// WithSelfCheck recounts occupied slots after every Push and Pull and panics
// if the scan disagrees with the cursor-derived count or a cursor leaves its
// domain. Meant for tests and debugging; it makes every mutation O(N).
func WithSelfCheck() Option {
	return func(o *options) {
		o.selfCheck = true
	}
}

// WithoutClear leaves a pulled value in its slot instead of resetting the
// slot to unoccupied. Snapshot then shows stale cells. Ignored when
// WithSelfCheck is also given, since the occupancy scan relies on cleared
// slots.
func WithoutClear() Option {
	return func(o *options) {
		o.keepStale = true
	}
}

// WithTrace calls fn after every successful Push and Pull. A nil fn is
// ignored.
func WithTrace(fn func(Event)) Option {
	return func(o *options) {
		if fn != nil {
			o.trace = fn
		}
	}
}

func applyOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.selfCheck {
		o.keepStale = false
	}
	return o
}

// Op identifies a mutating queue operation.
type Op int

const (
	OpPush Op = iota
	OpPull
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPull:
		return "pull"
	default:
		return "unknown"
	}
}

// Event describes one completed mutation.
type Event struct {
	Op Op
	// Slot is the physical slot written or cleared.
	Slot int
	// Len is the queue length after the operation.
	Len int
}
