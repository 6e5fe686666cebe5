// Command ringbench times push+pull pairs on every ring queue strategy
// against a channel-backed queue.
//
// Usage:
//
//	go run ./cmd/ringbench -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/randomizedcoder/ring-queues/internal/ring"
)

type queueInfo struct {
	name   string
	create func(size int) ring.Queue[int]
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "queue size (physical slots)")
	fill := flag.Int("fill", 0, "values kept queued while timing, must be below the effective capacity")
	flag.Parse()

	if *size < 2 || *fill < 0 || *fill >= *size-1 {
		fmt.Println("size must be at least 2 and fill in [0, size-2]")
		return
	}

	queues := []queueInfo{
		{"Channel", func(n int) ring.Queue[int] { return ring.NewChannel[int](n) }},
	}
	for _, k := range ring.Kinds() {
		queues = append(queues, queueInfo{k.String(), func(n int) ring.Queue[int] {
			q, _ := ring.NewQueue[int](k, n)
			return q
		}})
	}

	fmt.Printf("Benchmarking ring queues (%d iterations, size=%d, fill=%d)\n", *iterations, *size, *fill)
	fmt.Println("─────────────────────────────────────────────────")

	results := make([]time.Duration, len(queues))
	for i, info := range queues {
		q := info.create(*size)
		for j := 0; j < *fill; j++ {
			_ = q.Push(j)
		}

		start := time.Now()
		for j := 0; j < *iterations; j++ {
			_ = q.Push(j)
			_, _ = q.Pull()
		}
		results[i] = time.Since(start)
	}

	// Results
	baseline := float64(results[0].Nanoseconds()) / float64(*iterations)
	fmt.Printf("\nResults (push + pull per iteration):\n")
	for i, info := range queues {
		perOp := float64(results[i].Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-20s %v (%.2f ns/op, %.2fx vs Channel)\n", info.name+":", results[i], perOp, baseline/perOp)
	}

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	for i, info := range queues {
		perOp := float64(results[i].Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-20s %.2f M ops/sec\n", info.name+":", 1000/perOp)
	}
}
