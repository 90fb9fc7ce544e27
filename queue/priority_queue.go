package queue

import (
	"github.com/southernlabs-io/go-heap/heap"
)

// Element is an element of the PriorityQueue.
type Element[T any] struct {
	// The value stored with this element.
	Value T

	// The priority of this element. Change it through PriorityQueue.UpdatePriority.
	priority int64

	// The sequence number of this element, it is used to keep a consistent ordering when
	// priorities are equal.
	seq uint64

	// The index of this element in the heap, kept current by the heap's move hook. It is used
	// to remove or reprioritize an element in O(log(n)) instead of O(n).
	index int

	// The queue to which this element belongs.
	q *PriorityQueue[T]
}

func (e *Element[T]) Priority() int64 {
	return e.priority
}

/*
PriorityQueue is a priority queue built on top of the heap package.

High priority is closer to -infinity. Low priority is closer to +infinity.
Two elements with the same priority are ordered by insertion order, with the
first element inserted being the first returned by Pop.

This is not a thread-safe implementation.
*/
type PriorityQueue[T any] struct {
	h *heap.Heap[*Element[T]]

	// seq keeps a consistent ordering when priorities are equal. Overflow is not a concern,
	// it would take 584.9 million years to overflow running 1K pushes per second.
	seq uint64
}

func NewPriorityQueue[T any]() *PriorityQueue[T] {
	h := heap.New(func(a, b *Element[T]) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})
	h.OnMove(func(e *Element[T], i int) {
		e.index = i
	})
	return &PriorityQueue[T]{h: h}
}

// Push pushes a new element to the queue and returns it. O(log(n))
func (pq *PriorityQueue[T]) Push(x T, priority int64) *Element[T] {
	pq.seq += 1
	e := &Element[T]{Value: x, priority: priority, seq: pq.seq, q: pq}
	pq.h.Insert(e)
	return e
}

// Pop removes the highest priority element from the queue and returns it. O(log(n))
// It fails with a heap.ErrCodeEmptyHeap error if the queue is empty.
func (pq *PriorityQueue[T]) Pop() (*Element[T], error) {
	e, err := pq.h.Extract()
	if err != nil {
		return nil, err
	}
	e.index = -1
	e.q = nil
	return e, nil
}

// Peek returns the highest priority element without removing it. O(1)
// It fails with a heap.ErrCodeEmptyHeap error if the queue is empty.
func (pq *PriorityQueue[T]) Peek() (*Element[T], error) {
	return pq.h.Peek()
}

/*
Remove removes an element from the queue. O(log(n))

It returns true if the element was removed, false if it does not belong to
this queue or was already removed.
*/
func (pq *PriorityQueue[T]) Remove(e *Element[T]) bool {
	if e.q != pq || e.index == -1 {
		return false
	}

	removed, err := pq.h.RemoveAt(e.index)
	if err != nil {
		return false
	}
	removed.index = -1
	removed.q = nil
	return true
}

/*
UpdatePriority changes the priority of an element already in the queue and
re-sifts it to its new position. O(log(n))

It returns true if the element was updated, false if it does not belong to
this queue or was already removed.
*/
func (pq *PriorityQueue[T]) UpdatePriority(e *Element[T], priority int64) bool {
	if e.q != pq || e.index == -1 {
		return false
	}

	e.priority = priority
	pq.h.Fix(e.index)
	return true
}

// Len returns the number of elements in the queue. O(1)
func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}

// IsEmpty returns true if the queue has no elements. O(1)
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.h.IsEmpty()
}
