package heap

// source is a cursor over one input list during a merge. The list index
// breaks ties between equal heads, so elements from an earlier list take
// precedence and the merge is deterministic.
type source[T any] struct {
	head T
	idx  int
	rest []T
}

/*
Merge merges any number of lists, each already sorted by descending priority
under higher, into a single sorted slice. O(m*log(k)) for m total elements
across k lists.

A heap holds one cursor per non-empty list. Each round yields the highest
priority head and replaces the root with the next element from the same
list, or extracts the cursor once its list is exhausted.

The input lists are not mutated. Lists not sorted under higher produce an
unspecified order.
*/
func Merge[T any](higher CompareFunc[T], lists ...[]T) []T {
	total := 0
	sources := make([]source[T], 0, len(lists))
	for i, list := range lists {
		total += len(list)
		if len(list) > 0 {
			sources = append(sources, source[T]{head: list[0], idx: i, rest: list[1:]})
		}
	}

	h := Build(sources, func(a, b source[T]) bool {
		if higher(a.head, b.head) {
			return true
		}
		if higher(b.head, a.head) {
			return false
		}
		return a.idx < b.idx
	})

	merged := make([]T, 0, total)
	for !h.IsEmpty() {
		s := h.data[0]
		merged = append(merged, s.head)
		if len(s.rest) > 0 {
			_, _ = h.Replace(source[T]{head: s.rest[0], idx: s.idx, rest: s.rest[1:]})
		} else {
			_, _ = h.Extract()
		}
	}
	return merged
}
