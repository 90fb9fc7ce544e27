// Package heap provides a generic array-backed binary heap with an injected
// comparator, so min-heap vs max-heap (or any custom priority) is a
// construction-time choice.
//
// The heap is stored in a slice with an implicit tree structure determined by
// the indices: the parent of node i is at (i-1)/2 and its children are at
// 2i+1 and 2i+2. The heap invariant is that no child has strictly higher
// priority than its parent.
//
// This is not a thread-safe implementation.
package heap

import (
	"github.com/southernlabs-io/go-heap/errors"
)

// Error codes raised by this package.
const (
	// ErrCodeEmptyHeap is raised by Peek, Extract and Replace on an empty heap.
	ErrCodeEmptyHeap = "EMPTY_HEAP"
)

// CompareFunc reports whether a has strictly higher priority than b. For a
// min-heap return a < b, for a max-heap return a > b.
//
// It must be a pure, total and consistent ordering. The heap does not detect
// a malformed comparator; violating this precondition silently produces an
// out-of-invariant structure.
type CompareFunc[T any] func(a, b T) bool

/*
Heap is a binary heap over elements of type T.

The zero value is not usable, create one with New or Build. All operations
are O(log n) or better, except Build which is O(n).
*/
type Heap[T any] struct {
	higher CompareFunc[T]
	data   []T
	moved  func(x T, i int)
}

// New creates an empty heap with the given comparator.
func New[T any](higher CompareFunc[T]) *Heap[T] {
	return &Heap[T]{higher: higher}
}

/*
Build creates a heap from the given elements in O(n), using bottom-up
sift-down from the last internal node.

The heap takes ownership of the slice and reorders it in place. Building a
heap this way is linear, while inserting n elements one by one into an empty
heap is O(n*log(n)).
*/
func Build[T any](data []T, higher CompareFunc[T]) *Heap[T] {
	h := &Heap[T]{higher: higher, data: data}
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
	return h
}

/*
OnMove registers a hook invoked with an element and its index every time the
heap places that element at a new index. Embedders use it to keep an
element's position, which makes RemoveAt and UpdateAt reachable in O(log n).

Set it before the first insert; elements already in the heap are not
re-notified.
*/
func (h *Heap[T]) OnMove(moved func(x T, i int)) {
	h.moved = moved
}

// Len returns the number of elements in the heap. O(1)
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// IsEmpty returns true if the heap has no elements. O(1)
func (h *Heap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Insert adds an element to the heap and reestablishes the heap invariant by
// sifting the new element up. O(log n)
func (h *Heap[T]) Insert(x T) {
	h.data = append(h.data, x)
	h.notify(len(h.data) - 1)
	h.up(len(h.data) - 1)
}

// Peek returns the highest priority element without removing it. O(1)
// It fails with an ErrCodeEmptyHeap error if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, errors.Newf(ErrCodeEmptyHeap, "peek on empty heap")
	}
	return h.data[0], nil
}

/*
Extract removes and returns the highest priority element. O(log n)

The root is swapped with the last element, the slice shrinks by one and the
new root is sifted down to its position. It fails with an ErrCodeEmptyHeap
error if the heap is empty.
*/
func (h *Heap[T]) Extract() (T, error) {
	n := len(h.data) - 1
	if n < 0 {
		var zero T
		return zero, errors.Newf(ErrCodeEmptyHeap, "extract on empty heap")
	}
	h.swap(0, n)
	h.down(0, n)
	root := h.data[n]
	var zero T
	h.data[n] = zero
	h.data = h.data[:n]
	return root, nil
}

/*
Replace removes and returns the highest priority element, putting x in its
place. O(log n)

Equivalent to Extract followed by Insert, but with a single sift-down. It
fails with an ErrCodeEmptyHeap error if the heap is empty.
*/
func (h *Heap[T]) Replace(x T) (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, errors.Newf(ErrCodeEmptyHeap, "replace on empty heap")
	}
	root := h.data[0]
	h.data[0] = x
	h.notify(0)
	h.down(0, len(h.data))
	return root, nil
}

/*
PushPop inserts x and then extracts the highest priority element, with at
most a single sift-down. O(log n)

If x itself is the highest priority element, or the heap is empty, the heap
is left untouched and x is returned.
*/
func (h *Heap[T]) PushPop(x T) T {
	if len(h.data) > 0 && h.higher(h.data[0], x) {
		x, h.data[0] = h.data[0], x
		h.notify(0)
		h.down(0, len(h.data))
	}
	return x
}

// Fix reestablishes the heap invariant after the element at index i changed
// its priority. It is cheaper than removing and re-inserting the element.
// O(log n)
func (h *Heap[T]) Fix(i int) {
	if !h.down(i, len(h.data)) {
		h.up(i)
	}
}

// UpdateAt replaces the element at index i and re-sifts it in whichever
// direction its new priority requires. O(log n)
// It fails with an ErrCodeBadArgument error if i is out of range.
func (h *Heap[T]) UpdateAt(i int, x T) error {
	if i < 0 || i >= len(h.data) {
		return errors.Newf(errors.ErrCodeBadArgument, "index %d out of range, len is %d", i, len(h.data))
	}
	h.data[i] = x
	h.notify(i)
	h.Fix(i)
	return nil
}

// RemoveAt removes and returns the element at index i. O(log n)
// It fails with an ErrCodeBadArgument error if i is out of range.
func (h *Heap[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(h.data) {
		return zero, errors.Newf(errors.ErrCodeBadArgument, "index %d out of range, len is %d", i, len(h.data))
	}
	n := len(h.data) - 1
	removed := h.data[i]
	if i != n {
		h.swap(i, n)
	}
	h.data[n] = zero
	h.data = h.data[:n]
	if i < n {
		h.Fix(i)
	}
	return removed, nil
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.notify(i)
	h.notify(j)
}

func (h *Heap[T]) notify(i int) {
	if h.moved != nil {
		h.moved(h.data[i], i)
	}
}

// up sifts the element at index j towards the root while it has higher
// priority than its parent.
func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.higher(h.data[j], h.data[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts the element at index i0 towards the leaves while a child has
// higher priority, considering only the first n elements. When both children
// compare equal, the left child wins, which keeps extraction deterministic.
// It reports whether the element moved.
func (h *Heap[T]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.higher(h.data[j2], h.data[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.higher(h.data[j], h.data[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
