package internal

import (
	"io"

	"github.com/jateen67/minheap/heap"
)

// Queue is the record priority queue the CLI drives. Both a single heap and a
// sharded cluster of heaps satisfy it.
type Queue interface {
	Insert(r Record) error
	Peek() (Record, error)
	RemoveMin() (Record, error)
	Size() int
	Cap() int
	Verify() error
	Print(w io.Writer) error
	Close()
}

type HeapQueue struct {
	h *heap.MinHeap[int64, Record]
}

func NewHeapQueue(capacity int, opts ...heap.Option) (*HeapQueue, error) {
	h, err := heap.New[int64, Record](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &HeapQueue{h: h}, nil
}

func (q *HeapQueue) Insert(r Record) error      { return q.h.Insert(r.Key, r) }
func (q *HeapQueue) Peek() (Record, error)      { return q.h.Peek() }
func (q *HeapQueue) RemoveMin() (Record, error) { return q.h.RemoveMin() }
func (q *HeapQueue) Size() int                  { return q.h.Size() }
func (q *HeapQueue) Cap() int                   { return q.h.Cap() }
func (q *HeapQueue) Verify() error              { return q.h.Verify() }
func (q *HeapQueue) Print(w io.Writer) error    { return q.h.Print(w) }
func (q *HeapQueue) Close()                     { q.h.Close() }
