package queue_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/corekit/queue"
)

func TestQueueConstruct(t *testing.T) {
	q := queue.New[float32](4)
	require.True(t, q.IsEmpty())
	require.Equal(t, 0, q.Size())
	require.NoError(t, q.Validate())
}

func TestQueueEnqueueDequeue(t *testing.T) {
	q := queue.New[float32](0)

	q.Enqueue(0)
	require.Equal(t, 1, q.Size())
	require.False(t, q.IsEmpty())

	value, hasItems := q.Dequeue()
	require.True(t, hasItems)
	require.Equal(t, float32(0), value)
	require.True(t, q.IsEmpty())

	q.Enqueue(0)
	q.Enqueue(1)
	q.Enqueue(2)
	require.Equal(t, 3, q.Size())

	value, hasItems = q.Dequeue()
	require.True(t, hasItems)
	require.Equal(t, float32(0), value)
	require.Equal(t, 2, q.Size())

	value, hasItems = q.Dequeue()
	require.True(t, hasItems)
	require.Equal(t, float32(1), value)
	require.Equal(t, 1, q.Size())

	value, hasItems = q.Dequeue()
	require.True(t, hasItems)
	require.Equal(t, float32(2), value)
	require.Equal(t, 0, q.Size())
	require.True(t, q.IsEmpty())

	_, hasItems = q.Dequeue()
	require.False(t, hasItems)
}

func TestQueueGrowthKeepsOrder(t *testing.T) {
	q := queue.New[int](2)

	// Wrap the ring before forcing growth.
	q.Enqueue(0)
	q.Enqueue(1)
	_, hasItems := q.Dequeue()
	require.True(t, hasItems)

	for i := 2; i < 40; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 39, q.Size())
	require.NoError(t, q.Validate())

	for i := 1; i < 40; i++ {
		value, hasItems := q.Dequeue()
		require.True(t, hasItems)
		require.Equal(t, i, value)
	}
	require.True(t, q.IsEmpty())
}

func TestQueueClear(t *testing.T) {
	q := queue.New[float32](0)
	q.Enqueue(0)
	q.Enqueue(1)
	q.Enqueue(2)
	require.Equal(t, 3, q.Size())

	q.Clear()
	require.True(t, q.IsEmpty())
	require.Equal(t, 0, q.Size())
	require.NoError(t, q.Validate())

	q.Enqueue(5)
	value, hasItems := q.Dequeue()
	require.True(t, hasItems)
	require.Equal(t, float32(5), value)
}

func TestQueueZeroValue(t *testing.T) {
	var q queue.Queue[string]
	require.True(t, q.IsEmpty())
	require.NoError(t, q.Validate())

	q.Enqueue("a")
	value, hasItems := q.Dequeue()
	require.True(t, hasItems)
	require.Equal(t, "a", value)
}
