package heap

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jateen67/minheap/utils"
)

func TestNew(t *testing.T) {
	h, err := New[int, string](5)
	require.NoError(t, err)
	require.Equal(t, 0, h.Size())
	require.Equal(t, 5, h.Cap())
	require.True(t, h.IsEmpty())
	require.False(t, h.IsFull())

	for _, capacity := range []int{0, -1} {
		h, err := New[int, string](capacity)
		require.ErrorIs(t, err, utils.ErrInvalidCapacity)
		require.Nil(t, h)
	}
}

func TestRoundTrip(t *testing.T) {
	h, err := New[int, string](5)
	require.NoError(t, err)

	keys := []int{5, 3, 8, 1, 4}
	values := []string{"A", "B", "C", "D", "E"}
	for i := range keys {
		require.NoError(t, h.Insert(keys[i], values[i]))
	}
	require.Equal(t, 5, h.Size())

	v, err := h.RemoveMin()
	require.NoError(t, err)
	require.Equal(t, "D", v)
	require.Equal(t, 4, h.Size())

	v, err = h.RemoveMin()
	require.NoError(t, err)
	require.Equal(t, "B", v)
	require.Equal(t, 3, h.Size())

	var gotKeys []int
	var gotValues []string
	for !h.IsEmpty() {
		n, err := h.RemoveMinNode()
		require.NoError(t, err)
		gotKeys = append(gotKeys, n.Key)
		gotValues = append(gotValues, n.Value)
	}
	require.Equal(t, []int{4, 5, 8}, gotKeys)
	require.Equal(t, []string{"E", "A", "C"}, gotValues)
}

func TestInsertFull(t *testing.T) {
	h, err := New[int, int](3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, h.Insert(i+10, i))
	}
	require.True(t, h.IsFull())

	err = h.Insert(1, 99)
	require.ErrorIs(t, err, utils.ErrHeapFull)
	require.Equal(t, 3, h.Size())

	n, err := h.PeekNode()
	require.NoError(t, err)
	require.Equal(t, 10, n.Key)
	require.NoError(t, h.Verify())
}

func TestEmpty(t *testing.T) {
	h, err := New[int, *string](2)
	require.NoError(t, err)

	v, err := h.Peek()
	require.ErrorIs(t, err, utils.ErrHeapEmpty)
	require.Nil(t, v)

	v, err = h.RemoveMin()
	require.ErrorIs(t, err, utils.ErrHeapEmpty)
	require.Nil(t, v)
	require.Equal(t, 0, h.Size())
}

func TestNilValueIsNotEmpty(t *testing.T) {
	h, err := New[int, *string](2)
	require.NoError(t, err)
	require.NoError(t, h.Insert(1, nil))

	v, err := h.Peek()
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = h.RemoveMin()
	require.NoError(t, err)
	require.Nil(t, v)

	_, err = h.RemoveMin()
	require.ErrorIs(t, err, utils.ErrHeapEmpty)
}

func TestPeekIdempotent(t *testing.T) {
	h, err := New[float64, string](4)
	require.NoError(t, err)
	require.NoError(t, h.Insert(2.5, "x"))
	require.NoError(t, h.Insert(-1.25, "y"))
	require.NoError(t, h.Insert(7, "z"))

	for i := 0; i < 3; i++ {
		v, err := h.Peek()
		require.NoError(t, err)
		require.Equal(t, "y", v)
		require.Equal(t, 3, h.Size())
	}
}

func TestRemoveMinClearsSlot(t *testing.T) {
	h, err := New[int, *int](4)
	require.NoError(t, err)

	a, b := 1, 2
	require.NoError(t, h.Insert(a, &a))
	require.NoError(t, h.Insert(b, &b))

	_, err = h.RemoveMin()
	require.NoError(t, err)
	require.Nil(t, h.nodes[1].Value)
	require.Zero(t, h.nodes[1].Key)
}

func TestClose(t *testing.T) {
	h, err := New[int, string](2)
	require.NoError(t, err)
	require.NoError(t, h.Insert(1, "a"))

	h.Close()
	h.Close()

	require.Equal(t, 0, h.Size())
	require.Equal(t, 0, h.Cap())
	require.ErrorIs(t, h.Insert(2, "b"), utils.ErrHeapClosed)
	_, err = h.Peek()
	require.ErrorIs(t, err, utils.ErrHeapClosed)
	_, err = h.RemoveMin()
	require.ErrorIs(t, err, utils.ErrHeapClosed)
}

func TestRandomOperations(t *testing.T) {
	const capacity = 64
	rng := rand.New(rand.NewSource(42))

	h, err := New[int, int](capacity)
	require.NoError(t, err)

	var shadow []int
	inserts, removes := 0, 0
	for i := 0; i < 5000; i++ {
		if rng.Intn(3) > 0 {
			key := rng.Intn(100) - 50
			err := h.Insert(key, key)
			if len(shadow) == capacity {
				require.ErrorIs(t, err, utils.ErrHeapFull)
			} else {
				require.NoError(t, err)
				shadow = append(shadow, key)
				inserts++
			}
		} else {
			n, err := h.RemoveMinNode()
			if len(shadow) == 0 {
				require.ErrorIs(t, err, utils.ErrHeapEmpty)
			} else {
				require.NoError(t, err)
				sort.Ints(shadow)
				require.Equal(t, shadow[0], n.Key)
				require.Equal(t, n.Key, n.Value)
				shadow = shadow[1:]
				removes++
			}
		}
		require.NoError(t, h.Verify())
		require.Equal(t, inserts-removes, h.Size())
	}
}

func TestSortedExtraction(t *testing.T) {
	keys := []string{"pear", "apple", "fig", "apple", "kiwi", "banana", "fig"}
	h, err := New[string, int](len(keys))
	require.NoError(t, err)
	for i, k := range keys {
		require.NoError(t, h.Insert(k, i))
	}

	var got []string
	for h.Size() > 0 {
		n, err := h.RemoveMinNode()
		require.NoError(t, err)
		got = append(got, n.Key)
	}

	want := append([]string(nil), keys...)
	sort.Strings(want)
	require.Equal(t, want, got)
}

func TestBubbleDownPrefersLeftOnTie(t *testing.T) {
	h, err := New[int, string](4)
	require.NoError(t, err)

	// root 1, both children 2; the last node (9) gets moved to the root
	require.NoError(t, h.Insert(1, "root"))
	require.NoError(t, h.Insert(2, "left"))
	require.NoError(t, h.Insert(2, "right"))
	require.NoError(t, h.Insert(9, "last"))

	_, err = h.RemoveMin()
	require.NoError(t, err)

	n, err := h.Node(0)
	require.NoError(t, err)
	require.Equal(t, "left", n.Value)
}

func TestBubbleUpEqualKeysDoNotSwap(t *testing.T) {
	h, err := New[int, string](2)
	require.NoError(t, err)
	require.NoError(t, h.Insert(1, "first"))
	require.NoError(t, h.Insert(1, "second"))

	v, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, "first", v)
}

func TestVerifyDetectsViolation(t *testing.T) {
	h, err := New[int, int](3)
	require.NoError(t, err)
	require.NoError(t, h.Insert(1, 1))
	require.NoError(t, h.Insert(2, 2))

	h.nodes[1].Key = 0
	require.ErrorIs(t, h.Verify(), utils.ErrInvariant)
}

func TestPrint(t *testing.T) {
	h, err := New[int, string](5)
	require.NoError(t, err)
	for _, k := range []int{5, 3, 8, 1, 4} {
		require.NoError(t, h.Insert(k, ""))
	}

	buf := &bytes.Buffer{}
	require.NoError(t, h.Print(buf))
	require.Equal(t,
		"  0 -   0 : 1\n"+
			"  1 -   1 : 3\n"+
			"  1 -   2 : 8\n"+
			"  2 -   3 : 5\n"+
			"  2 -   4 : 4\n"+
			"\n",
		buf.String())
}

func TestLoggerReportsRejections(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h, err := New[int, int](1, WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = h.RemoveMin()
	require.ErrorIs(t, err, utils.ErrHeapEmpty)
	require.NoError(t, h.Insert(1, 1))
	require.ErrorIs(t, h.Insert(2, 2), utils.ErrHeapFull)

	require.Equal(t, 1, logs.FilterMessage("heap is empty").Len())
	require.Equal(t, 1, logs.FilterMessage("insert rejected").Len())
}

func BenchmarkMinHeap_Insert(b *testing.B) {
	h, _ := New[int, int](b.N + 1)
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Insert(rng.Int(), i)
	}

	opsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(opsPerSec, "ops/s")
}

func BenchmarkMinHeap_RemoveMin(b *testing.B) {
	h, _ := New[int, int](b.N + 1)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < b.N; i++ {
		h.Insert(rng.Int(), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.RemoveMin()
	}

	opsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(opsPerSec, "ops/s")
}
