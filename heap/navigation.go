package heap

import (
	"github.com/pkg/errors"

	"github.com/jateen67/minheap/utils"
)

/*
Index arithmetic over the flat slice:

	parent(i) = (i-1)/2
	left(i)   = 2i+1
	right(i)  = 2i+2

The boolean result is false when the index is absent: the root has no parent
and a child at or beyond size is not occupied.
*/

func Parent(i int) (int, bool) {
	if i <= 0 {
		return 0, false
	}
	return (i - 1) / 2, true
}

func (h *MinHeap[K, V]) Left(i int) (int, bool) {
	return h.child(2*i + 1)
}

func (h *MinHeap[K, V]) Right(i int) (int, bool) {
	return h.child(2*i + 2)
}

func (h *MinHeap[K, V]) child(c int) (int, bool) {
	if c <= 0 || c >= h.size {
		return 0, false
	}
	return c, true
}

// Level returns the depth of index i, the root being level 0. It walks the
// parent chain, so it is only meant for diagnostics.
func Level(i int) int {
	level := 0
	for {
		parent, ok := Parent(i)
		if !ok {
			return level
		}
		i = parent
		level++
	}
}

// Node returns the node stored at an occupied index.
func (h *MinHeap[K, V]) Node(i int) (HeapNode[K, V], error) {
	if i < 0 || i >= h.size {
		return HeapNode[K, V]{}, errors.Wrapf(utils.ErrInvalidIndex, "index %d with size %d", i, h.size)
	}
	return h.nodes[i], nil
}
