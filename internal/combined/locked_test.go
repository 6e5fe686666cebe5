package combined_test

import (
	"sync"
	"testing"

	"github.com/randomizedcoder/ring-queues/internal/ring"
)

// lockedQueue is the caller-side mutex a ring queue needs once more than
// one goroutine touches it.
type lockedQueue[T any] struct {
	mu sync.Mutex
	q  ring.Queue[T]
}

func (l *lockedQueue[T]) Push(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Push(v)
}

func (l *lockedQueue[T]) Pull() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Pull()
}

// TestLockedRing_ProducerConsumer runs one producer and one consumer
// goroutine against each strategy behind a mutex.
// Run with: go test -race ./internal/combined
func TestLockedRing_ProducerConsumer(t *testing.T) {
	for _, k := range ring.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			rq, err := ring.NewQueue[int](k, 64)
			if err != nil {
				t.Fatal(err)
			}
			q := &lockedQueue[int]{q: rq}
			count := 10000
			done := make(chan struct{})

			// Producer (single goroutine)
			go func() {
				for i := 0; i < count; i++ {
					for q.Push(i) != nil {
						// Spin until push succeeds
					}
				}
				close(done)
			}()

			// Consumer (this test's goroutine)
			expected := 0
			for expected < count {
				val, err := q.Pull()
				if err != nil {
					continue
				}
				if val != expected {
					t.Fatalf("FIFO violation: expected %d, got %d", expected, val)
				}
				expected++
			}

			<-done
		})
	}
}
