package internal

import (
	"fmt"

	"github.com/google/uuid"
)

/*
A record is what the CLI and the merge/cluster layers push through a heap:
------------------------------
| id (uuid) | key | value    |
------------------------------
the key orders the heap, the id routes a record to a cluster shard
*/
type Record struct {
	ID    uuid.UUID
	Key   int64
	Value string
}

func NewRecord(key int64, value string) Record {
	return Record{
		ID:    uuid.New(),
		Key:   key,
		Value: value,
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%d=%s (%s)", r.Key, r.Value, r.ID)
}
