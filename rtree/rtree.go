// Package rtree implements an in-memory R-Tree. It is used to find candidate
// pairs of segments that may intersect while noding a geometry graph.
package rtree

import (
	"github.com/cockroachdb/errors"
)

// node is a node in an R-Tree. nodes can either be leaf nodes holding entries
// for terminal items, or intermediate nodes holding entries for more nodes.
type node struct {
	entries    [1 + maxChildren]entry
	numEntries int
	parent     int
	isLeaf     bool
}

// entry is an entry under a node, leading either to terminal items, or more nodes.
type entry struct {
	box Box

	// For leaf nodes, this is a recordID. For non-leaf nodes, it is the child.
	data int
}

func (t *RTree) appendEntry(nodeIdx int, e entry) {
	n := t.node(nodeIdx)
	n.entries[n.numEntries] = e
	n.numEntries++
	if !n.isLeaf {
		t.node(e.data).parent = nodeIdx
	}
}

// RTree is an in-memory R-Tree data structure. It holds record ID and bounding
// box pairs (the actual records aren't stored in the tree; the user is
// responsible for storing their own records). Its zero value is an empty
// R-Tree.
type RTree struct {
	nodes []node // 1-indexed, allowing 0 to represent "nil"
	root  int
	count int
}

// node converts a 1-indexed node index into a node pointer.
func (t *RTree) node(nodeIdx int) *node {
	return &t.nodes[nodeIdx-1]
}

func (t *RTree) newNode(isLeaf bool) int {
	t.nodes = append(t.nodes, node{isLeaf: isLeaf})
	return len(t.nodes)
}

// Len gives the number of records held by the tree.
func (t *RTree) Len() int {
	return t.count
}

// Stop is a special sentinal error that can be used to stop a search operation
// without any error.
var Stop = errors.New("stop")

// RangeSearch looks for any items in the tree that overlap with the given
// bounding box. The callback is called with the record ID for each found item.
// If an error is returned from the callback then the search is terminated
// early.  Any error returned from the callback is returned by RangeSearch,
// except for the case where the special Stop sentinal error is returned (in
// which case nil will be returned from RangeSearch).
func (t *RTree) RangeSearch(box Box, callback func(recordID int) error) error {
	if t.root == 0 {
		return nil
	}
	var recurse func(int) error
	recurse = func(nodeIdx int) error {
		n := t.node(nodeIdx)
		for i := 0; i < n.numEntries; i++ {
			e := n.entries[i]
			if !e.box.Overlaps(box) {
				continue
			}
			if !n.isLeaf {
				if err := recurse(e.data); err != nil {
					return err
				}
				continue
			}
			if err := callback(e.data); err != nil {
				return err
			}
		}
		return nil
	}
	if err := recurse(t.root); !errors.Is(err, Stop) {
		return err
	}
	return nil
}

// Extent gives the Box that most closely bounds the RTree. If the RTree is
// empty, then false is returned.
func (t *RTree) Extent() (Box, bool) {
	if t.root == 0 {
		return Box{}, false
	}
	root := t.node(t.root)
	if root.numEntries == 0 {
		return Box{}, false
	}
	return calculateBound(root), true
}
