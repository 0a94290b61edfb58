package hufftext

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type testWeight uint64

func (w testWeight) Weight() uint64 { return uint64(w) }

func TestMinHeap_Empty(t *testing.T) {
	var h MinHeap[testWeight]
	x, ok := h.ExtractMin()
	if ok {
		t.Errorf("expected empty heap, got %d", x)
	}
	if h.Len() != 0 {
		t.Errorf("expected Len() 0, got %d", h.Len())
	}
}

func TestMinHeap_Single(t *testing.T) {
	var h MinHeap[testWeight]
	h.Insert(7)
	x, ok := h.ExtractMin()
	require.True(t, ok)
	require.Equal(t, testWeight(7), x)
	_, ok = h.ExtractMin()
	require.False(t, ok)
}

func TestMinHeap_Sorted(t *testing.T) {
	var h MinHeap[testWeight]
	for _, w := range []testWeight{5, 9, 12, 13, 16, 45, 1, 1, 0, 45} {
		h.Insert(w)
	}

	var actual []testWeight
	for {
		x, ok := h.ExtractMin()
		if !ok {
			break
		}
		actual = append(actual, x)
	}
	require.Equal(t, []testWeight{0, 1, 1, 5, 9, 12, 13, 16, 45, 45}, actual)
}

func TestMinHeap_Interleaved(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var h MinHeap[testWeight]
	var shadow []testWeight
	for step := 0; step < 5000; step++ {
		if len(shadow) == 0 || rng.Intn(3) != 0 {
			w := testWeight(rng.Intn(100))
			h.Insert(w)
			shadow = append(shadow, w)
			continue
		}

		sort.Slice(shadow, func(i, j int) bool { return shadow[i] < shadow[j] })
		x, ok := h.ExtractMin()
		require.True(t, ok, "step %d", step)
		require.Equal(t, shadow[0], x, "step %d", step)
		shadow = shadow[1:]
		require.Equal(t, len(shadow), h.Len(), "step %d", step)
	}
}

func TestMinHeap_TiesKeepLayoutOrder(t *testing.T) {
	// Equal weights are never swapped, so the first of several equal
	// entries inserted into an empty heap stays at the root.
	var h MinHeap[*Node]
	first := &Node{Symbol: 'x', Freq: 3}
	h.Insert(first)
	h.Insert(&Node{Symbol: 'y', Freq: 3})
	h.Insert(&Node{Symbol: 'z', Freq: 3})

	x, ok := h.ExtractMin()
	require.True(t, ok)
	require.Same(t, first, x)
}
