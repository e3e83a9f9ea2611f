package internal

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

/*
Red-Black tree as memtable -- buffers records until they are flushed as one
sorted run. Records sharing a key stay in arrival order.
*/

type Memtable struct {
	data  *rbt.Tree
	count int
	limit int
}

func NewMemtable(limit int) *Memtable {
	return &Memtable{
		data:  rbt.NewWith(utils.Int64Comparator),
		limit: limit,
	}
}

func (m *Memtable) Set(record Record) {
	var bucket []Record
	if val, found := m.data.Get(record.Key); found {
		bucket = val.([]Record)
	}
	m.data.Put(record.Key, append(bucket, record))
	m.count++
}

func (m *Memtable) Len() int {
	return m.count
}

// Full reports whether the memtable reached its flush threshold. A limit of
// zero never fills.
func (m *Memtable) Full() bool {
	return m.limit > 0 && m.count >= m.limit
}

// Flush returns every buffered record in key order and empties the memtable.
func (m *Memtable) Flush() []Record {
	run := make([]Record, 0, m.count)
	it := m.data.Iterator()
	for it.Next() {
		run = append(run, it.Value().([]Record)...)
	}
	m.clear()
	return run
}

func (m *Memtable) clear() {
	m.data.Clear()
	m.count = 0
}
