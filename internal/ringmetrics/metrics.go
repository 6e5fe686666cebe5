// Package ringmetrics exports ring queue activity as Prometheus metrics.
//
// Queue decorates any ring.Queue: every call is forwarded unchanged and
// counted. Rejected pushes and pulls are counted separately so a caller
// polling IsFull/IsEmpty can be told apart from one relying on the errors.
package ringmetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randomizedcoder/ring-queues/internal/ring"
)

const (
	namespace = "ringq"
	subsystem = "queue"
)

// queueMetrics holds the collectors for one queue.
type queueMetrics struct {
	pushes        prometheus.Counter
	pulls         prometheus.Counter
	peeks         prometheus.Counter
	fullRejects   prometheus.Counter
	emptyRejects  prometheus.Counter
	length        prometheus.Gauge
	utilization   prometheus.Gauge
	capacityGauge prometheus.Gauge
}

func newQueueMetrics(name, strategy string) *queueMetrics {
	labels := prometheus.Labels{"queue": name, "strategy": strategy}
	counter := func(metric, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        metric,
			ConstLabels: labels,
			Help:        help,
		})
	}
	gauge := func(metric, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        metric,
			ConstLabels: labels,
			Help:        help,
		})
	}

	return &queueMetrics{
		pushes:        counter("pushes_total", "Total number of successful push operations"),
		pulls:         counter("pulls_total", "Total number of successful pull operations"),
		peeks:         counter("peeks_total", "Total number of peek operations"),
		fullRejects:   counter("full_rejections_total", "Total number of pushes rejected because the queue was full"),
		emptyRejects:  counter("empty_rejections_total", "Total number of pulls rejected because the queue was empty"),
		length:        gauge("length", "Current number of queued values"),
		utilization:   gauge("utilization", "Queue length as a fraction of its effective capacity (0.0 to 1.0)"),
		capacityGauge: gauge("capacity", "Effective capacity of the queue"),
	}
}

func (m *queueMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.pushes, m.pulls, m.peeks, m.fullRejects, m.emptyRejects,
		m.length, m.utilization, m.capacityGauge,
	}
}

// register registers every collector, unregistering the ones already
// added if a later registration fails.
func (m *queueMetrics) register(reg prometheus.Registerer) error {
	var done []prometheus.Collector
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			for _, d := range done {
				reg.Unregister(d)
			}
			return err
		}
		done = append(done, c)
	}
	return nil
}

func (m *queueMetrics) updateLength(length, capacity int) {
	m.length.Set(float64(length))
	if capacity > 0 {
		m.utilization.Set(float64(length) / float64(capacity))
	} else {
		m.utilization.Set(1)
	}
}

// Queue is a ring.Queue that records every operation.
//
// It adds no locking; the single-owner rule of the wrapped queue applies.
type Queue[T any] struct {
	q ring.Queue[T]
	m *queueMetrics
}

// Wrap registers metrics for q under the given queue name and returns the
// instrumented queue. strategy is exported as a label; pass the ring
// strategy name or "channel".
func Wrap[T any](q ring.Queue[T], reg prometheus.Registerer, name, strategy string) (*Queue[T], error) {
	if reg == nil {
		return nil, errors.New("ringmetrics: nil registerer")
	}

	m := newQueueMetrics(name, strategy)
	if err := m.register(reg); err != nil {
		return nil, fmt.Errorf("ringmetrics: register %s: %w", name, err)
	}
	m.capacityGauge.Set(float64(q.Cap()))
	m.updateLength(q.Len(), q.Cap())

	return &Queue[T]{q: q, m: m}, nil
}

// Unwrap returns the underlying queue.
func (i *Queue[T]) Unwrap() ring.Queue[T] {
	return i.q
}

func (i *Queue[T]) Push(v T) error {
	err := i.q.Push(v)
	switch {
	case err == nil:
		i.m.pushes.Inc()
		i.m.updateLength(i.q.Len(), i.q.Cap())
	case errors.Is(err, ring.ErrQueueFull):
		i.m.fullRejects.Inc()
	}
	return err
}

func (i *Queue[T]) Pull() (T, error) {
	v, err := i.q.Pull()
	switch {
	case err == nil:
		i.m.pulls.Inc()
		i.m.updateLength(i.q.Len(), i.q.Cap())
	case errors.Is(err, ring.ErrQueueEmpty):
		i.m.emptyRejects.Inc()
	}
	return v, err
}

func (i *Queue[T]) Peek() (T, bool) {
	i.m.peeks.Inc()
	return i.q.Peek()
}

func (i *Queue[T]) IsEmpty() bool { return i.q.IsEmpty() }
func (i *Queue[T]) IsFull() bool  { return i.q.IsFull() }
func (i *Queue[T]) Len() int      { return i.q.Len() }
func (i *Queue[T]) Cap() int      { return i.q.Cap() }

// String forwards to the wrapped queue when it has a state dump.
func (i *Queue[T]) String() string {
	if s, ok := i.q.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("<instrumented len=%d cap=%d>", i.q.Len(), i.q.Cap())
}
