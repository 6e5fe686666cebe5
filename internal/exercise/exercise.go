package exercise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/randomizedcoder/ring-queues/internal/ring"
)

var (
	// ErrOrderViolation means the pulled values are not 1..items in order.
	ErrOrderViolation = errors.New("exercise: values pulled out of order")

	// ErrPeekMismatch means Peek returned something other than the next Pull.
	ErrPeekMismatch = errors.New("exercise: peek disagrees with pull")

	// ErrNoCapacity means the queue can never accept a value, so the run
	// would not terminate.
	ErrNoCapacity = errors.New("exercise: queue has no usable capacity")
)

// Report summarises one run.
type Report struct {
	Strategy string
	Capacity int
	Seed     uint64

	Pushes    int
	Pulls     int
	FullHits  int // push attempts skipped because IsFull
	EmptyHits int // pull attempts skipped because IsEmpty
	MaxLen    int // highest Len observed

	Results []int
}

// Run pushes the values 1..items through q, interleaved with pulls chosen by
// a coin flip, then drains q. The queue is first prefilled with up to 3/4
// of its capacity. Every pull is preceded by a Peek that must agree with
// it. The pulled sequence must equal 1..items.
//
// Each transition is logged at debug level together with the queue state.
func Run(name string, q ring.Queue[int], items int, rng *rand.Rand, logger *slog.Logger) (Report, error) {
	rep := Report{Strategy: name, Capacity: q.Cap()}
	if q.Cap() < 1 && items > 0 {
		return rep, fmt.Errorf("%s: %w", name, ErrNoCapacity)
	}

	r := runner{q: q, logger: logger, rep: &rep, debug: logger.Enabled(context.Background(), slog.LevelDebug)}
	next := 1
	r.log("start", 0)

	prefill := rng.IntN(3*q.Cap()/4 + 1)
	for i := 0; i < prefill && next <= items; i++ {
		if err := r.push(next, "prefill"); err != nil {
			return rep, err
		}
		next++
	}

	for next <= items {
		if rng.IntN(2) == 0 {
			if q.IsFull() {
				rep.FullHits++
				r.log("full", 0)
				continue
			}
			if err := r.push(next, "push"); err != nil {
				return rep, err
			}
			next++
			continue
		}

		if q.IsEmpty() {
			rep.EmptyHits++
			r.log("empty", 0)
			continue
		}
		if err := r.pull("pull"); err != nil {
			return rep, err
		}
	}

	for !q.IsEmpty() {
		if err := r.pull("drain"); err != nil {
			return rep, err
		}
	}
	r.log("done", 0)

	if err := checkSequence(rep.Results, items); err != nil {
		return rep, fmt.Errorf("%s: %w", name, err)
	}
	return rep, nil
}

type runner struct {
	q      ring.Queue[int]
	logger *slog.Logger
	rep    *Report
	debug  bool
}

func (r *runner) push(v int, event string) error {
	if err := r.q.Push(v); err != nil {
		return fmt.Errorf("%s: push %d: %w", r.rep.Strategy, v, err)
	}
	r.rep.Pushes++
	r.rep.MaxLen = max(r.rep.MaxLen, r.q.Len())
	r.log(event, v)
	return nil
}

func (r *runner) pull(event string) error {
	peeked, ok := r.q.Peek()
	v, err := r.q.Pull()
	if err != nil {
		return fmt.Errorf("%s: pull: %w", r.rep.Strategy, err)
	}
	if !ok || peeked != v {
		return fmt.Errorf("%s: %w: peek=%d (ok=%t) pull=%d", r.rep.Strategy, ErrPeekMismatch, peeked, ok, v)
	}
	r.rep.Pulls++
	r.rep.Results = append(r.rep.Results, v)
	r.log(event, v)
	return nil
}

func (r *runner) log(event string, value int) {
	if !r.debug {
		return
	}
	r.logger.Debug("transition",
		"strategy", r.rep.Strategy,
		"event", event,
		"value", value,
		"state", fmt.Sprint(r.q))
}

func checkSequence(got []int, items int) error {
	if len(got) != items {
		return fmt.Errorf("%w: pulled %d values, want %d", ErrOrderViolation, len(got), items)
	}
	for i, v := range got {
		if v != i+1 {
			return fmt.Errorf("%w: position %d holds %d", ErrOrderViolation, i, v)
		}
	}
	return nil
}

// Decorator lets a caller wrap each queue before it is exercised, e.g. to
// add metrics. It may return q unchanged.
type Decorator func(k ring.Kind, q ring.RingQueue[int]) (ring.Queue[int], error)

// RunAll exercises every strategy named in cfg and returns one report per
// strategy, stopping at the first failure.
func RunAll(cfg Config, logger *slog.Logger, decorate Decorator) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	reports := make([]Report, 0, len(kinds))
	for _, k := range kinds {
		rq, err := ring.NewQueue[int](k, cfg.Capacity, cfg.Options()...)
		if err != nil {
			return reports, err
		}

		var q ring.Queue[int] = rq
		if decorate != nil {
			if q, err = decorate(k, rq); err != nil {
				return reports, fmt.Errorf("decorate %v: %w", k, err)
			}
		}

		rng := rand.New(rand.NewPCG(seed, uint64(k)))
		rep, err := Run(k.String(), q, cfg.Items, rng, logger)
		rep.Seed = seed
		reports = append(reports, rep)
		if err != nil {
			return reports, err
		}

		logger.Info("exercise passed",
			"strategy", rep.Strategy,
			"capacity", cfg.Capacity,
			"seed", seed,
			"pushes", rep.Pushes,
			"pulls", rep.Pulls,
			"full_hits", rep.FullHits,
			"empty_hits", rep.EmptyHits,
			"max_len", rep.MaxLen)
	}
	return reports, nil
}
