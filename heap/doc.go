// Package heap implements a fixed-capacity binary min-heap of (key, value)
// pairs.
//
// The heap stores its nodes in a single slice allocated by New and reads it
// as an implicit complete binary tree: the parent of slot i is (i-1)/2 and
// its children are 2i+1 and 2i+2. Insert appends at the first free slot and
// bubbles the node up; RemoveMin moves the last node to the root and bubbles
// it down. Both run in O(log n).
//
// Keys are any cmp.Ordered type. Values are opaque to the heap.
//
// Failure is reported through errors from the utils package, never through a
// zero value:
//
//	h, _ := heap.New[int, string](4)
//	if err := h.Insert(3, "c"); errors.Is(err, utils.ErrHeapFull) {
//	    // evict or report upward
//	}
//	v, err := h.RemoveMin()
//	if errors.Is(err, utils.ErrHeapEmpty) {
//	    // nothing stored
//	}
//
// The capacity never changes. Equal keys are not kept in insertion order.
// A MinHeap must not be used from several goroutines without a lock around
// every call.
package heap
