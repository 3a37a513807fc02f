// Package queue implements a generic FIFO queue backed by a growable ring
// buffer. Like the pool package, a Queue is single-owner and performs no
// internal synchronization.
package queue

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/corekit/memutils"
)

// DefaultCapacity is the ring size used when a queue grows from empty.
const DefaultCapacity = 8

// Queue is a FIFO of elements of a single type. The zero value is an empty
// queue that allocates its ring on first use.
type Queue[T any] struct {
	// items is the ring storage. Its length is always zero or a power of
	// two, so positions wrap with a mask instead of a modulo.
	items []T
	head  int
	count int
}

var _ memutils.Validatable = &Queue[int]{}

// New creates a queue with room for at least initialCapacity elements before
// the first growth. The ring size is rounded up to a power of two. An
// initialCapacity <= 0 defers allocation to the first Enqueue.
func New[T any](initialCapacity int) *Queue[T] {
	q := &Queue[T]{}
	if initialCapacity > 0 {
		q.items = make([]T, memutils.NextPow2(initialCapacity))
	}
	return q
}

// Enqueue appends item to the back of the queue, growing the ring when full.
func (q *Queue[T]) Enqueue(item T) {
	if q.count == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.count)&(len(q.items)-1)] = item
	q.count++

	memutils.DebugValidate(q)
}

// Dequeue removes and returns the front of the queue. The second return is
// false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}

	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) & (len(q.items) - 1)
	q.count--

	memutils.DebugValidate(q)
	return item, true
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return q.count
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// Clear drops every queued element. The ring storage is retained for reuse.
func (q *Queue[T]) Clear() {
	var zero T
	for i := 0; i < q.count; i++ {
		q.items[(q.head+i)&(len(q.items)-1)] = zero
	}
	q.head = 0
	q.count = 0

	memutils.DebugValidate(q)
}

// Validate performs internal consistency checks on the ring bookkeeping.
func (q *Queue[T]) Validate() error {
	if len(q.items) == 0 {
		if q.count != 0 || q.head != 0 {
			return errors.Newf("the queue has no ring storage but reports %d elements at position %d", q.count, q.head)
		}
		return nil
	}

	err := memutils.CheckPow2(len(q.items), "queue ring size")
	if err != nil {
		return err
	}
	if q.count < 0 || q.count > len(q.items) {
		return errors.Newf("the queue reports %d elements, but its ring holds at most %d", q.count, len(q.items))
	}
	if q.head < 0 || q.head >= len(q.items) {
		return errors.Newf("the queue's head position %d is outside its ring of size %d", q.head, len(q.items))
	}
	return nil
}

// grow doubles the ring and unwraps the queued elements to its front.
func (q *Queue[T]) grow() {
	newSize := DefaultCapacity
	if len(q.items) > 0 {
		newSize = len(q.items) * 2
	}
	memutils.DebugCheckPow2(newSize, "queue ring size")

	items := make([]T, newSize)
	for i := 0; i < q.count; i++ {
		items[i] = q.items[(q.head+i)&(len(q.items)-1)]
	}
	q.items = items
	q.head = 0
}
