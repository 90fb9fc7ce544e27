package heap

import (
	"slices"

	"github.com/southernlabs-io/go-heap/errors"
)

// reverse inverts a comparator, so the root of the resulting heap is the
// lowest priority element. Bounded selection keeps its n best candidates in
// a reversed heap and evicts through the root.
func reverse[T any](higher CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) bool {
		return higher(b, a)
	}
}

func sortCompare[T any](higher CompareFunc[T]) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case higher(a, b):
			return -1
		case higher(b, a):
			return 1
		default:
			return 0
		}
	}
}

/*
TopN moves the n highest priority elements of data to its beginning, sorted
by descending priority, and returns them as a subslice. O(m*log(n)) for m
elements, with no additional allocations.

Mutates data. If n exceeds len(data) the whole slice is selected.
*/
func TopN[T any](data []T, n int, higher CompareFunc[T]) []T {
	if n > len(data) {
		n = len(data)
	}
	if n <= 0 {
		return data[:0]
	}
	// The reversed heap over data[:n] keeps its lowest priority element at
	// the root, where a better candidate can evict it in one sift.
	bound := Build(data[:n], reverse(higher))
	for i := n; i < len(data); i++ {
		if higher(data[i], data[0]) {
			data[0], data[i] = data[i], data[0]
			bound.Fix(0)
		}
	}
	slices.SortFunc(data[:n], sortCompare(higher))
	return data[:n]
}

/*
Kth returns the element of data ranking kth by priority, 1-based, so k=1 is
the highest priority element. O(m*log(k)) time and O(k) space.

Does not mutate data. It fails with an ErrCodeBadArgument error if k is out
of range.
*/
func Kth[T any](data []T, k int, higher CompareFunc[T]) (T, error) {
	if k < 1 || k > len(data) {
		var zero T
		return zero, errors.Newf(errors.ErrCodeBadArgument, "k is %d, must be in range [1, %d]", k, len(data))
	}
	bound := Build(slices.Clone(data[:k]), reverse(higher))
	for _, x := range data[k:] {
		if higher(x, bound.data[0]) {
			_, _ = bound.Replace(x)
		}
	}
	return bound.data[0], nil
}
