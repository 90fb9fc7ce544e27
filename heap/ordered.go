package heap

import (
	"golang.org/x/exp/constraints"
)

// minCompare and maxCompare are the comparators behind the ordered
// convenience constructors.

func minCompare[T constraints.Ordered](a, b T) bool { return a < b }

func maxCompare[T constraints.Ordered](a, b T) bool { return a > b }

// NewMin creates an empty min-heap for ordered types.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return New(minCompare[T])
}

// NewMax creates an empty max-heap for ordered types.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return New(maxCompare[T])
}

// BuildMin creates a min-heap from the given elements in O(n).
// The heap takes ownership of the slice and reorders it in place.
func BuildMin[T constraints.Ordered](data []T) *Heap[T] {
	return Build(data, minCompare[T])
}

// BuildMax creates a max-heap from the given elements in O(n).
// The heap takes ownership of the slice and reorders it in place.
func BuildMax[T constraints.Ordered](data []T) *Heap[T] {
	return Build(data, maxCompare[T])
}

// KthSmallest returns the kth smallest element of data, 1-based.
// It fails with an ErrCodeBadArgument error if k is out of range.
func KthSmallest[T constraints.Ordered](data []T, k int) (T, error) {
	return Kth(data, k, minCompare[T])
}

// KthLargest returns the kth largest element of data, 1-based.
// It fails with an ErrCodeBadArgument error if k is out of range.
func KthLargest[T constraints.Ordered](data []T, k int) (T, error) {
	return Kth(data, k, maxCompare[T])
}

// MinN moves the n smallest elements of data to its beginning, sorted
// ascending, and returns them as a subslice. Mutates data.
func MinN[T constraints.Ordered](data []T, n int) []T {
	return TopN(data, n, minCompare[T])
}

// MaxN moves the n largest elements of data to its beginning, sorted
// descending, and returns them as a subslice. Mutates data.
func MaxN[T constraints.Ordered](data []T, n int) []T {
	return TopN(data, n, maxCompare[T])
}
