package heap

import (
	"fmt"
	"io"
)

// Print writes one line per occupied slot in storage order: tree level, index
// and key. A blank line terminates the dump.
func (h *MinHeap[K, V]) Print(w io.Writer) error {
	for i := 0; i < h.size; i++ {
		if _, err := fmt.Fprintf(w, "%3d - %3d : %v\n", Level(i), i, h.nodes[i].Key); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
