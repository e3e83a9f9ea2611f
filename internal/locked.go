package internal

import (
	"cmp"
	"io"
	"sync"

	"github.com/jateen67/minheap/heap"
)

// Locked guards every call on a heap with one mutex.
type Locked[K cmp.Ordered, V any] struct {
	mu sync.Mutex
	h  *heap.MinHeap[K, V]
}

func NewLocked[K cmp.Ordered, V any](h *heap.MinHeap[K, V]) *Locked[K, V] {
	return &Locked[K, V]{h: h}
}

func (l *Locked[K, V]) Insert(key K, value V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Insert(key, value)
}

func (l *Locked[K, V]) PeekNode() (heap.HeapNode[K, V], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.PeekNode()
}

func (l *Locked[K, V]) RemoveMinNode() (heap.HeapNode[K, V], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.RemoveMinNode()
}

func (l *Locked[K, V]) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Size()
}

func (l *Locked[K, V]) Cap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Cap()
}

func (l *Locked[K, V]) Verify() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Verify()
}

func (l *Locked[K, V]) Print(w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Print(w)
}

func (l *Locked[K, V]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.h.Close()
}
