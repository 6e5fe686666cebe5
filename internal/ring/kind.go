package ring

import (
	"fmt"
	"strings"
)

// Kind selects a strategy by tag, for configuration and factories.
type Kind int

const (
	KindDoubleRange Kind = iota
	KindBackwardDoubleRange
	KindSlotSacrifice
	KindSentinel
	KindBackwardSentinel
)

// Kinds returns every strategy tag in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindDoubleRange,
		KindBackwardDoubleRange,
		KindSlotSacrifice,
		KindSentinel,
		KindBackwardSentinel,
	}
}

// String returns the strategy name, matching Strategy.Name.
func (k Kind) String() string {
	switch k {
	case KindDoubleRange:
		return "DoubleRange"
	case KindBackwardDoubleRange:
		return "BackwardDoubleRange"
	case KindSlotSacrifice:
		return "SlotSacrifice"
	case KindSentinel:
		return "Sentinel"
	case KindBackwardSentinel:
		return "BackwardSentinel"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts a strategy name in any case, with or without dashes or
// underscores ("double-range", "BackwardSentinel", "slot_sacrifice").
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for _, k := range Kinds() {
		if strings.ToLower(k.String()) == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NewStrategy returns the strategy value for k with n physical slots.
func NewStrategy(k Kind, n int) (Strategy, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, n)
	}
	switch k {
	case KindDoubleRange:
		return DoubleRange{N: n}, nil
	case KindBackwardDoubleRange:
		return BackwardDoubleRange{N: n}, nil
	case KindSlotSacrifice:
		return SlotSacrifice{N: n}, nil
	case KindSentinel:
		return Sentinel{N: n}, nil
	case KindBackwardSentinel:
		return BackwardSentinel{N: n}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, k)
	}
}

// NewQueue creates a queue of kind k with n physical slots.
//
// Each kind gets its own instantiation of Ring, so strategy calls inside the
// returned queue are made on a concrete type.
func NewQueue[T any](k Kind, n int, opts ...Option) (RingQueue[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, n)
	}
	switch k {
	case KindDoubleRange:
		return New[T](DoubleRange{N: n}, opts...), nil
	case KindBackwardDoubleRange:
		return New[T](BackwardDoubleRange{N: n}, opts...), nil
	case KindSlotSacrifice:
		return New[T](SlotSacrifice{N: n}, opts...), nil
	case KindSentinel:
		return New[T](Sentinel{N: n}, opts...), nil
	case KindBackwardSentinel:
		return New[T](BackwardSentinel{N: n}, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, k)
	}
}
