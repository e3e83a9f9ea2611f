package internal

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/serialx/hashring"
	"go.uber.org/zap"

	"github.com/jateen67/minheap/heap"
	"github.com/jateen67/minheap/utils"
)

type Node struct {
	ID   string
	Heap *Locked[int64, Record]
}

// Cluster spreads records over several fixed-capacity heaps. A record's id
// picks its node on a consistent hash ring; the global minimum is the
// smallest of the node roots.
type Cluster struct {
	// serialises Peek and RemoveMin so two removals never pick the same root
	mu       sync.Mutex
	hashRing *hashring.HashRing
	Nodes    map[string]*Node
	order    []string
	logger   *zap.Logger
}

func NewCluster(numOfNodes, capacity int, logger *zap.Logger) (*Cluster, error) {
	if numOfNodes <= 0 {
		return nil, errors.Errorf("cluster needs at least one node, got %d", numOfNodes)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Cluster{
		Nodes:  make(map[string]*Node, numOfNodes),
		logger: logger,
	}
	for i := 0; i < numOfNodes; i++ {
		id := fmt.Sprintf("node-%d", i+1)
		h, err := heap.New[int64, Record](capacity, heap.WithLogger(logger.With(zap.String("node", id))))
		if err != nil {
			c.Close()
			return nil, errors.WithMessagef(err, "init %s", id)
		}
		c.Nodes[id] = &Node{ID: id, Heap: NewLocked(h)}
		c.order = append(c.order, id)
	}
	c.hashRing = hashring.New(c.order)

	return c, nil
}

func (c *Cluster) nodeFor(r Record) (*Node, error) {
	nodeAddr, ok := c.hashRing.GetNode(r.ID.String()) // get which node this record belongs to
	if !ok {
		return nil, errors.Errorf("no node for record %s", r.ID)
	}
	return c.Nodes[nodeAddr], nil
}

// Insert stores r on its node. A full node rejects the record with
// utils.ErrHeapFull even if other nodes have room.
func (c *Cluster) Insert(r Record) error {
	node, err := c.nodeFor(r)
	if err != nil {
		return err
	}
	if err := node.Heap.Insert(r.Key, r); err != nil {
		return errors.WithMessagef(err, "insert on %s", node.ID)
	}
	c.logger.Debug("record inserted", zap.String("node", node.ID), zap.Int64("key", r.Key))
	return nil
}

func (c *Cluster) Peek() (Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, root, err := c.minNode()
	return root.Value, err
}

func (c *Cluster) RemoveMin() (Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, _, err := c.minNode()
	if err != nil {
		return Record{}, err
	}
	n, err := node.Heap.RemoveMinNode()
	return n.Value, err
}

// minNode returns the node whose root has the smallest key. Ties go to the
// node listed first.
func (c *Cluster) minNode() (*Node, heap.HeapNode[int64, Record], error) {
	var (
		best     *Node
		bestRoot heap.HeapNode[int64, Record]
	)
	for _, id := range c.order {
		node := c.Nodes[id]
		root, err := node.Heap.PeekNode()
		if errors.Is(err, utils.ErrHeapEmpty) {
			continue
		}
		if err != nil {
			return nil, bestRoot, errors.WithMessagef(err, "peek %s", id)
		}
		if best == nil || root.Key < bestRoot.Key {
			best, bestRoot = node, root
		}
	}
	if best == nil {
		return nil, bestRoot, utils.ErrHeapEmpty
	}
	return best, bestRoot, nil
}

func (c *Cluster) Size() int {
	total := 0
	for _, id := range c.order {
		total += c.Nodes[id].Heap.Size()
	}
	return total
}

func (c *Cluster) Cap() int {
	total := 0
	for _, id := range c.order {
		total += c.Nodes[id].Heap.Cap()
	}
	return total
}

func (c *Cluster) Verify() error {
	for _, id := range c.order {
		if err := c.Nodes[id].Heap.Verify(); err != nil {
			return errors.WithMessagef(err, "verify %s", id)
		}
	}
	return nil
}

func (c *Cluster) Print(w io.Writer) error {
	for _, id := range c.order {
		node := c.Nodes[id]
		if _, err := fmt.Fprintf(w, "%s (%d/%d):\n", id, node.Heap.Size(), node.Heap.Cap()); err != nil {
			return err
		}
		if err := node.Heap.Print(w); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cluster) Close() {
	for _, id := range c.order {
		c.Nodes[id].Heap.Close()
	}
}
