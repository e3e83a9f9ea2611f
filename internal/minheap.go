package internal

import (
	"github.com/pkg/errors"

	"github.com/jateen67/minheap/heap"
	"github.com/jateen67/minheap/utils"
)

// cursor points at the next unread record of one run
type cursor struct {
	run int
	pos int
}

// MergeRuns k-way merges runs that are each sorted by key into one sorted
// run. The heap holds at most one cursor per run, so its capacity is the
// number of runs. Records with equal keys from different runs come out in no
// particular order.
func MergeRuns(runs [][]Record, opts ...heap.Option) ([]Record, error) {
	if len(runs) == 0 {
		return nil, nil
	}

	h, err := heap.New[int64, cursor](len(runs), opts...)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	total := 0
	for i, run := range runs {
		total += len(run)
		if len(run) == 0 {
			continue
		}
		if err := h.Insert(run[0].Key, cursor{run: i}); err != nil {
			return nil, errors.WithMessagef(err, "seed run %d", i)
		}
	}

	merged := make([]Record, 0, total)
	for !h.IsEmpty() {
		c, err := h.RemoveMin()
		if err != nil {
			return nil, err
		}
		run := runs[c.run]
		merged = append(merged, run[c.pos])

		// advance the run that produced the record
		next := c.pos + 1
		if next == len(run) {
			continue
		}
		if run[next].Key < run[c.pos].Key {
			return nil, errors.Wrapf(utils.ErrUnsortedRun, "run %d at position %d", c.run, next)
		}
		if err := h.Insert(run[next].Key, cursor{run: c.run, pos: next}); err != nil {
			return nil, errors.WithMessagef(err, "advance run %d", c.run)
		}
	}

	return merged, nil
}
