package heap

import (
	"cmp"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jateen67/minheap/utils"
)

// HeapNode is a single slot of the heap.
type HeapNode[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// MinHeap is a fixed-capacity binary min-heap. The tree is implicit: the
// children of slot i live at 2i+1 and 2i+2 and occupied slots are always
// [0, size).
//
// A MinHeap is not safe for concurrent use.
type MinHeap[K cmp.Ordered, V any] struct {
	nodes  []HeapNode[K, V]
	size   int
	closed bool
	logger *zap.Logger
}

type config struct {
	logger *zap.Logger
}

type Option func(*config)

// WithLogger makes the heap report rejected operations at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New allocates a heap holding at most capacity nodes. The backing storage is
// allocated once and never grows.
func New[K cmp.Ordered, V any](capacity int, opts ...Option) (*MinHeap[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(utils.ErrInvalidCapacity, "new heap with capacity %d", capacity)
	}

	c := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return &MinHeap[K, V]{
		nodes:  make([]HeapNode[K, V], capacity),
		logger: c.logger,
	}, nil
}

// Close releases the backing storage. Calling Close more than once is a no-op.
func (h *MinHeap[K, V]) Close() {
	if h.closed {
		return
	}
	h.nodes = nil
	h.size = 0
	h.closed = true
}

func (h *MinHeap[K, V]) Size() int {
	return h.size
}

func (h *MinHeap[K, V]) Cap() int {
	return len(h.nodes)
}

func (h *MinHeap[K, V]) IsEmpty() bool {
	return h.size == 0
}

func (h *MinHeap[K, V]) IsFull() bool {
	return h.size == len(h.nodes)
}

// Insert adds value under key. It returns utils.ErrHeapFull, leaving the heap
// untouched, when every slot is occupied.
func (h *MinHeap[K, V]) Insert(key K, value V) error {
	if h.closed {
		return utils.ErrHeapClosed
	}
	if h.size == len(h.nodes) {
		h.logger.Debug("insert rejected", zap.Int("capacity", len(h.nodes)))
		return utils.ErrHeapFull
	}

	h.nodes[h.size] = HeapNode[K, V]{Key: key, Value: value}
	h.size++
	h.bubbleUp(h.size - 1)
	return nil
}

// Peek returns the value with the smallest key without removing it.
func (h *MinHeap[K, V]) Peek() (V, error) {
	n, err := h.PeekNode()
	return n.Value, err
}

func (h *MinHeap[K, V]) PeekNode() (HeapNode[K, V], error) {
	if err := h.checkNonEmpty(); err != nil {
		return HeapNode[K, V]{}, err
	}
	return h.nodes[0], nil
}

// RemoveMin removes and returns the value with the smallest key. The heap
// drops its reference to the value.
func (h *MinHeap[K, V]) RemoveMin() (V, error) {
	n, err := h.RemoveMinNode()
	return n.Value, err
}

func (h *MinHeap[K, V]) RemoveMinNode() (HeapNode[K, V], error) {
	if err := h.checkNonEmpty(); err != nil {
		return HeapNode[K, V]{}, err
	}

	root := h.nodes[0]
	h.size--

	// move last node to the root, then sink it
	h.nodes[0] = h.nodes[h.size]
	h.nodes[h.size] = HeapNode[K, V]{}
	h.bubbleDown(0)

	return root, nil
}

func (h *MinHeap[K, V]) checkNonEmpty() error {
	if h.closed {
		return utils.ErrHeapClosed
	}
	if h.size == 0 {
		h.logger.Debug("heap is empty")
		return utils.ErrHeapEmpty
	}
	return nil
}

func (h *MinHeap[K, V]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}

func (h *MinHeap[K, V]) bubbleUp(i int) {
	for {
		parent, ok := Parent(i)
		if !ok || !(h.nodes[i].Key < h.nodes[parent].Key) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *MinHeap[K, V]) bubbleDown(i int) {
	for i < h.size {
		smallest := i

		// left wins ties against right
		if left, ok := h.Left(i); ok && h.nodes[left].Key < h.nodes[smallest].Key {
			smallest = left
		}
		if right, ok := h.Right(i); ok && h.nodes[right].Key < h.nodes[smallest].Key {
			smallest = right
		}

		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// Verify walks every occupied slot and reports the first child whose key is
// smaller than its parent's.
func (h *MinHeap[K, V]) Verify() error {
	if h.size < 0 || h.size > len(h.nodes) {
		return errors.Errorf("size %d outside [0, %d]", h.size, len(h.nodes))
	}
	for i := 1; i < h.size; i++ {
		parent, _ := Parent(i)
		if h.nodes[i].Key < h.nodes[parent].Key {
			return errors.Wrapf(utils.ErrInvariant, "key %v at index %d is below parent key %v at index %d",
				h.nodes[i].Key, i, h.nodes[parent].Key, parent)
		}
	}
	return nil
}
