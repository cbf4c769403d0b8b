package rtree

import (
	"math"
	"math/bits"
)

const (
	minChildren = 2
	maxChildren = 4
)

// Insert adds a new record to the RTree.
func (t *RTree) Insert(box Box, recordID int) {
	t.count++
	if t.root == 0 {
		t.root = t.newNode(true)
	}

	leafIdx := t.chooseLeaf(box)
	t.appendEntry(leafIdx, entry{box: box, data: recordID})
	t.growAncestors(leafIdx, box)
	t.splitUpwards(leafIdx)
}

// chooseLeaf descends from the root to the leaf whose box needs the least
// enlargement to cover the new box. Area is used to break ties.
func (t *RTree) chooseLeaf(box Box) int {
	currentIdx := t.root
	for {
		current := t.node(currentIdx)
		if current.isLeaf {
			return currentIdx
		}
		bestEntry := 0
		bestDelta := enlargement(box, current.entries[0].box)
		for i := 1; i < current.numEntries; i++ {
			entryBox := current.entries[i].box
			delta := enlargement(box, entryBox)
			if delta < bestDelta ||
				(delta == bestDelta && area(entryBox) < area(current.entries[bestEntry].box)) {
				bestDelta = delta
				bestEntry = i
			}
		}
		currentIdx = current.entries[bestEntry].data
	}
}

// growAncestors expands the boxes of the entries pointing at the node, all
// the way up to the root, so that they also cover box.
func (t *RTree) growAncestors(nodeIdx int, box Box) {
	for nodeIdx != t.root {
		parentIdx := t.node(nodeIdx).parent
		parent := t.node(parentIdx)
		for i := 0; i < parent.numEntries; i++ {
			if e := &parent.entries[i]; e.data == nodeIdx {
				e.box = combine(e.box, box)
				break
			}
		}
		nodeIdx = parentIdx
	}
}

// splitUpwards splits the node if it has overflowed, and keeps splitting
// ancestors until no node overflows. A new root is created if the old root
// had to be split.
func (t *RTree) splitUpwards(nodeIdx int) {
	for t.node(nodeIdx).numEntries > maxChildren {
		siblingIdx := t.splitNode(nodeIdx)
		if nodeIdx == t.root {
			rootIdx := t.newNode(false)
			t.appendEntry(rootIdx, entry{box: calculateBound(t.node(nodeIdx)), data: nodeIdx})
			t.appendEntry(rootIdx, entry{box: calculateBound(t.node(siblingIdx)), data: siblingIdx})
			t.root = rootIdx
			return
		}

		parentIdx := t.node(nodeIdx).parent
		parent := t.node(parentIdx)
		for i := 0; i < parent.numEntries; i++ {
			if parent.entries[i].data == nodeIdx {
				parent.entries[i].box = calculateBound(t.node(nodeIdx))
				break
			}
		}
		t.appendEntry(parentIdx, entry{box: calculateBound(t.node(siblingIdx)), data: siblingIdx})
		nodeIdx = parentIdx
	}
}

// splitNode splits node with index n into two nodes. The first node replaces
// n, and the second node is newly created. The return value is the index of
// the new node.
//
// Every partition of the entries is tried, and the one giving the smallest
// combined area is used.
func (t *RTree) splitNode(nodeIdx int) int {
	n := t.node(nodeIdx)

	var (
		// All zeros would not be valid split, so start at 1.
		minSplit = uint64(1)
		// The MSB should always be 0, to remove duplicates from inverting the
		// bit pattern. So we raise 2 to the power of one less than the number
		// of entries rather than the number of entries.
		//
		// E.g. for 4 entries, we want the following bit patterns:
		// 0001, 0010, 0011, 0100, 0101, 0110, 0111.
		maxSplit = uint64((1 << (n.numEntries - 1)) - 1)
	)
	bestArea := math.Inf(+1)
	var bestSplit uint64
	for split := minSplit; split <= maxSplit; split++ {
		if ones := bits.OnesCount64(split); ones < minChildren || (n.numEntries-ones) < minChildren {
			continue
		}
		var boxA, boxB Box
		var hasA, hasB bool
		for i := 0; i < n.numEntries; i++ {
			entryBox := n.entries[i].box
			if split&(1<<i) == 0 {
				if hasA {
					boxA = combine(boxA, entryBox)
				} else {
					boxA, hasA = entryBox, true
				}
			} else {
				if hasB {
					boxB = combine(boxB, entryBox)
				} else {
					boxB, hasB = entryBox, true
				}
			}
		}
		if combinedArea := area(boxA) + area(boxB); combinedArea < bestArea {
			bestArea = combinedArea
			bestSplit = split
		}
	}

	// Use the existing node for the 0 bits in the split, and a new node for
	// the 1 bits in the split.
	newNodeIdx := t.newNode(n.isLeaf)
	n = t.node(nodeIdx) // t.nodes may have been reallocated
	old := n.entries
	total := n.numEntries
	n.entries = [1 + maxChildren]entry{}
	n.numEntries = 0
	for i := 0; i < total; i++ {
		if bestSplit&(1<<i) == 0 {
			t.appendEntry(nodeIdx, old[i])
		} else {
			t.appendEntry(newNodeIdx, old[i])
		}
	}
	return newNodeIdx
}
