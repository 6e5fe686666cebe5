package ringmetrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/ring-queues/internal/ring"
)

func TestQueue_CountsOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	q, err := Wrap[int](ring.New[int](ring.Sentinel{N: 2}), reg, "test", "Sentinel")
	require.NoError(t, err)

	_, err = q.Pull()
	assert.ErrorIs(t, err, ring.ErrQueueEmpty)

	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	assert.ErrorIs(t, q.Push(3), ring.ErrQueueFull)

	v, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, err = q.Pull()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.Equal(t, 2.0, testutil.ToFloat64(q.m.pushes))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.m.pulls))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.m.peeks))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.m.fullRejects))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.m.emptyRejects))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.m.length))
	assert.Equal(t, 0.5, testutil.ToFloat64(q.m.utilization))
	assert.Equal(t, 2.0, testutil.ToFloat64(q.m.capacityGauge))
}

func TestQueue_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	q, err := Wrap[int](ring.New[int](ring.DoubleRange{N: 4}), reg, "exposed", "DoubleRange")
	require.NoError(t, err)
	require.NoError(t, q.Push(7))

	expected := `
# HELP ringq_queue_pushes_total Total number of successful push operations
# TYPE ringq_queue_pushes_total counter
ringq_queue_pushes_total{queue="exposed",strategy="DoubleRange"} 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "ringq_queue_pushes_total")
	assert.NoError(t, err)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 8, count)
}

func TestQueue_ZeroCapacityUtilization(t *testing.T) {
	reg := prometheus.NewRegistry()
	q, err := Wrap[int](ring.New[int](ring.SlotSacrifice{N: 1}), reg, "tiny", "SlotSacrifice")
	require.NoError(t, err)

	assert.ErrorIs(t, q.Push(1), ring.ErrQueueFull)
	assert.Equal(t, 1.0, testutil.ToFloat64(q.m.utilization))
}

func TestWrap_DuplicateName(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := Wrap[int](ring.NewChannel[int](4), reg, "dup", "channel")
	require.NoError(t, err)

	_, err = Wrap[int](ring.NewChannel[int](4), reg, "dup", "channel")
	require.Error(t, err)

	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)

	// The failed registration must not leave partial collectors behind.
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 8, count)
}

func TestWrap_NilRegisterer(t *testing.T) {
	_, err := Wrap[int](ring.NewChannel[int](1), nil, "x", "channel")
	assert.Error(t, err)
}

func TestQueue_Forwarding(t *testing.T) {
	inner := ring.New[int](ring.BackwardDoubleRange{N: 3})
	q, err := Wrap[int](inner, prometheus.NewRegistry(), "fwd", "BackwardDoubleRange")
	require.NoError(t, err)

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 3, q.Cap())
	require.NoError(t, q.Push(1))
	assert.Equal(t, 1, q.Len())
	assert.False(t, q.IsFull())
	assert.Equal(t, inner.String(), q.String())
	assert.Same(t, inner, q.Unwrap())
}
