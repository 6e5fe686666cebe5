package combined_test

import (
	"sync/atomic"
	"testing"

	lfr "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/ring-queues/internal/ring"
)

// ============================================================================
// Comparison Benchmarks: ring strategies vs go-lock-free-ring (MPSC)
// ============================================================================
//
// KEY DIFFERENCE:
// - ring strategies: single owner, no synchronisation at all
// - go-lock-free-ring: MPSC (Multi-Producer, Single-Consumer) with sharding
//
// Single-goroutine runs show the cost of the atomics the sharded ring pays
// for; multi-producer runs show the cost of a mutex around a plain ring.

var sinkOkLfr bool

// ============================================================================
// Same goroutine: push then pull
// ============================================================================

func BenchmarkLFR_Inline_DoubleRange(b *testing.B) {
	q := ring.New[int](ring.DoubleRange{N: 1024})
	b.ReportAllocs()
	b.ResetTimer()

	var v int
	for i := 0; i < b.N; i++ {
		_ = q.Push(i)
		v, _ = q.Pull()
	}
	sinkInt = v
}

func BenchmarkLFR_Inline_Sentinel(b *testing.B) {
	q := ring.New[int](ring.Sentinel{N: 1024})
	b.ReportAllocs()
	b.ResetTimer()

	var v int
	for i := 0; i < b.N; i++ {
		_ = q.Push(i)
		v, _ = q.Pull()
	}
	sinkInt = v
}

// BenchmarkLFR_Inline_ShardedRing1 - go-lock-free-ring with 1 shard
func BenchmarkLFR_Inline_ShardedRing1(b *testing.B) {
	r, err := lfr.NewShardedRing(1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = r.Write(0, i)
		r.TryRead()
	}
	sinkOkLfr = ok
}

// ============================================================================
// MPSC: 4 Producers → 1 Consumer
// ============================================================================

// BenchmarkLFR_MPSC_LockedRing_4P - 4 producers sharing a mutex-guarded ring
func BenchmarkLFR_MPSC_LockedRing_4P(b *testing.B) {
	q := &lockedQueue[int]{q: ring.New[int](ring.BackwardSentinel{N: 1024})}
	done := make(chan struct{})
	consumerDone := make(chan struct{})

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

	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			for q.Push(i) != nil {
			}
			i++
		}
	})

	b.StopTimer()
	close(done)
	<-consumerDone
}

// BenchmarkLFR_MPSC_ShardedRing_4P_4S - 4 producers, 4 shards
func BenchmarkLFR_MPSC_ShardedRing_4P_4S(b *testing.B) {
	r, err := lfr.NewShardedRing(1024, 4)
	if err != nil {
		b.Fatal(err)
	}
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	var producerID atomic.Uint64
	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		pid := producerID.Add(1) - 1
		i := 0
		for pb.Next() {
			for !r.Write(pid, i) {
			}
			i++
		}
	})

	b.StopTimer()
	close(done)
	<-consumerDone
}
