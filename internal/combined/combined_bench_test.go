package combined_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randomizedcoder/ring-queues/internal/ring"
	"github.com/randomizedcoder/ring-queues/internal/ringmetrics"
)

// Sink variables
var sinkInt int
var sinkErr error

// ============================================================================
// Recycle loop: pull one, push it back, on a pre-filled queue
// ============================================================================

func benchRecycle(b *testing.B, q ring.Queue[int]) {
	// Pre-fill queue
	for !q.IsFull() {
		_ = q.Push(q.Len())
	}

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var err error
	for i := 0; i < b.N; i++ {
		val, err = q.Pull()
		_ = q.Push(val) // Recycle
	}
	sinkInt = val
	sinkErr = err
}

// BenchmarkCombined_Recycle_Plain is the floor: a bare Sentinel ring.
func BenchmarkCombined_Recycle_Plain(b *testing.B) {
	benchRecycle(b, ring.New[int](ring.Sentinel{N: 1024}))
}

// BenchmarkCombined_Recycle_Metrics adds Prometheus counters and gauges to
// every call.
func BenchmarkCombined_Recycle_Metrics(b *testing.B) {
	q, err := ringmetrics.Wrap[int](ring.New[int](ring.Sentinel{N: 1024}), prometheus.NewRegistry(), "bench", "Sentinel")
	if err != nil {
		b.Fatal(err)
	}
	benchRecycle(b, q)
}

// BenchmarkCombined_Recycle_SelfCheck pays for the occupancy scan on every
// mutation; kept small so the O(N) scan stays measurable.
func BenchmarkCombined_Recycle_SelfCheck(b *testing.B) {
	benchRecycle(b, ring.New[int](ring.Sentinel{N: 64}, ring.WithSelfCheck()))
}

// BenchmarkCombined_Recycle_Channel is the standard library baseline.
func BenchmarkCombined_Recycle_Channel(b *testing.B) {
	benchRecycle(b, ring.NewChannel[int](1024))
}

// ============================================================================
// Pipeline benchmarks (producer/consumer)
// ============================================================================

// BenchmarkPipeline_Channel benchmarks a 2-goroutine pipeline using a
// buffered channel.
func BenchmarkPipeline_Channel(b *testing.B) {
	ch := make(chan int, 1024)
	done := make(chan struct{})

	// Consumer goroutine
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ch:
			}
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ch <- i
	}

	b.StopTimer()
	close(done)
}

// BenchmarkPipeline_LockedRing benchmarks a 2-goroutine pipeline sharing a
// DoubleRange ring behind a mutex.
func BenchmarkPipeline_LockedRing(b *testing.B) {
	q := &lockedQueue[int]{q: ring.New[int](ring.DoubleRange{N: 1024})}
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	// Consumer goroutine
	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				_, _ = q.Pull()
			}
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for q.Push(i) != nil {
			// Spin until push succeeds
		}
	}

	b.StopTimer()
	close(done)
	<-consumerDone
}
