package heap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/southernlabs-io/go-heap/errors"
	"github.com/southernlabs-io/go-heap/heap"
)

// drain extracts every element of h, in priority order.
func drain[T any](t *testing.T, h *heap.Heap[T]) []T {
	t.Helper()
	var out []T
	for !h.IsEmpty() {
		x, err := h.Extract()
		require.NoError(t, err)
		out = append(out, x)
	}
	return out
}

func TestMinHeapExtractionOrder(t *testing.T) {
	h := heap.BuildMin([]int{5, 3, 8, 1, 9, 2})
	require.EqualValues(t, []int{1, 2, 3, 5, 8, 9}, drain(t, h))
}

func TestMaxHeap(t *testing.T) {
	h := heap.NewMax[int]()
	h.Insert(4)
	h.Insert(10)
	h.Insert(1)

	x, err := h.Extract()
	require.NoError(t, err)
	require.EqualValues(t, 10, x)
	require.EqualValues(t, 2, h.Len())
}

func TestEmptyHeap(t *testing.T) {
	h := heap.NewMin[int]()
	require.True(t, h.IsEmpty())
	require.EqualValues(t, 0, h.Len())

	_, err := h.Peek()
	require.Error(t, err)
	require.True(t, errors.IsCode(err, heap.ErrCodeEmptyHeap))

	_, err = h.Extract()
	require.Error(t, err)
	require.True(t, errors.IsCode(err, heap.ErrCodeEmptyHeap))

	_, err = h.Replace(1)
	require.Error(t, err)
	require.True(t, errors.IsCode(err, heap.ErrCodeEmptyHeap))
}

func TestSizeAccounting(t *testing.T) {
	h := heap.NewMin[int]()
	for i := 1; i <= 100; i++ {
		h.Insert(rand.Intn(2001) - 1000)
		require.EqualValues(t, i, h.Len())
		require.False(t, h.IsEmpty())
	}
	for i := 99; i >= 0; i-- {
		_, err := h.Extract()
		require.NoError(t, err)
		require.EqualValues(t, i, h.Len())
	}
	require.True(t, h.IsEmpty())
}

func TestPeekDoesNotRemove(t *testing.T) {
	h := heap.BuildMin([]int{3, 1, 2})
	for i := 0; i < 3; i++ {
		x, err := h.Peek()
		require.NoError(t, err)
		require.EqualValues(t, 1, x)
		require.EqualValues(t, 3, h.Len())
	}
}

func TestBuildMatchesIncrementalInsert(t *testing.T) {
	data := make([]int, 500)
	for i := range data {
		data[i] = rand.Intn(2001) - 1000
	}

	incremental := heap.NewMin[int]()
	for _, x := range data {
		incremental.Insert(x)
	}
	built := heap.BuildMin(append([]int(nil), data...))

	require.EqualValues(t, drain(t, built), drain(t, incremental))
}

func TestExtractionIsSorted(t *testing.T) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = rand.Intn(2001) - 1000
	}
	exp := append([]int(nil), data...)
	sort.Ints(exp)

	require.EqualValues(t, exp, drain(t, heap.BuildMin(data)))
}

func TestCustomComparator(t *testing.T) {
	type task struct {
		name     string
		deadline int64
	}
	h := heap.New(func(a, b task) bool {
		return a.deadline < b.deadline
	})
	h.Insert(task{"backup", 300})
	h.Insert(task{"rotate-keys", 100})
	h.Insert(task{"compact", 200})

	first, err := h.Extract()
	require.NoError(t, err)
	require.EqualValues(t, "rotate-keys", first.name)

	second, err := h.Peek()
	require.NoError(t, err)
	require.EqualValues(t, "compact", second.name)
}

func TestPushPop(t *testing.T) {
	h := heap.NewMin[int]()
	// Empty heap: x comes straight back.
	require.EqualValues(t, 7, h.PushPop(7))
	require.True(t, h.IsEmpty())

	h.Insert(5)
	require.EqualValues(t, 3, h.PushPop(3))
	require.EqualValues(t, 5, h.PushPop(8))

	x, err := h.Peek()
	require.NoError(t, err)
	require.EqualValues(t, 8, x)
}

func TestReplace(t *testing.T) {
	h := heap.BuildMin([]int{4, 6, 8})
	x, err := h.Replace(10)
	require.NoError(t, err)
	require.EqualValues(t, 4, x)
	require.EqualValues(t, 3, h.Len())
	require.EqualValues(t, []int{6, 8, 10}, drain(t, h))
}

func TestPositionalOutOfRange(t *testing.T) {
	h := heap.BuildMin([]int{1, 2, 3})

	err := h.UpdateAt(3, 0)
	require.Error(t, err)
	require.True(t, errors.IsCode(err, errors.ErrCodeBadArgument))

	_, err = h.RemoveAt(-1)
	require.Error(t, err)
	require.True(t, errors.IsCode(err, errors.ErrCodeBadArgument))
}

func BenchmarkInsertExtract10K(b *testing.B) {
	b.StopTimer()
	total := 10_000

	datasets := make([][]int, b.N)
	for i := 0; i < b.N; i++ {
		datasets[i] = make([]int, total)
		for j := range datasets[i] {
			datasets[i][j] = rand.Int()
		}
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		h := heap.NewMin[int]()
		for _, x := range datasets[i] {
			h.Insert(x)
		}
		for !h.IsEmpty() {
			_, _ = h.Extract()
		}
	}
}
