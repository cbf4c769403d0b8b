package geomgraph

import (
	"github.com/peterstace/geomgraph/rtree"
)

// EdgeSetIntersector finds the pairs of segments in a set of edges (or
// between two sets of edges) that may intersect, and passes them to a
// SegmentIntersector.
type EdgeSetIntersector interface {
	// ComputeIntersections intersects the edges with each other. Segments
	// from the same edge are only tested against each other if
	// testAllSegments is set.
	ComputeIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool)

	// ComputeIntersectionsBetween intersects each edge in edges0 with each
	// edge in edges1.
	ComputeIntersectionsBetween(edges0, edges1 []*Edge, si *SegmentIntersector)
}

// SimpleEdgeSetIntersector tests every pair of segments. It's quadratic, so
// only suitable for small inputs and for checking other intersectors.
type SimpleEdgeSetIntersector struct{}

func (SimpleEdgeSetIntersector) ComputeIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool) {
	for _, e0 := range edges {
		for _, e1 := range edges {
			if testAllSegments || e0 != e1 {
				if !computeEdgePairIntersections(e0, e1, si) {
					return
				}
			}
		}
	}
}

func (SimpleEdgeSetIntersector) ComputeIntersectionsBetween(edges0, edges1 []*Edge, si *SegmentIntersector) {
	for _, e0 := range edges0 {
		for _, e1 := range edges1 {
			if !computeEdgePairIntersections(e0, e1, si) {
				return
			}
		}
	}
}

// computeEdgePairIntersections tests each segment of e0 against each segment
// of e1. It returns false if the intersector is done.
func computeEdgePairIntersections(e0, e1 *Edge, si *SegmentIntersector) bool {
	for i0 := 0; i0 < len(e0.pts)-1; i0++ {
		for i1 := 0; i1 < len(e1.pts)-1; i1++ {
			si.AddIntersections(e0, i0, e1, i1)
			if si.IsDone() {
				return false
			}
		}
	}
	return true
}

// IndexedEdgeSetIntersector uses an R-Tree of segment bounding boxes to only
// test pairs of segments whose boxes overlap.
type IndexedEdgeSetIntersector struct{}

type segmentRef struct {
	edge   *Edge
	segIdx int
}

// segmentIndex is an R-Tree over the segments of a set of edges. Record IDs
// are indices into refs.
type segmentIndex struct {
	tree rtree.RTree
	refs []segmentRef
}

func newSegmentIndex(edges []*Edge) *segmentIndex {
	idx := new(segmentIndex)
	for _, e := range edges {
		for i := 0; i < len(e.pts)-1; i++ {
			idx.tree.Insert(rtree.SegmentBox(e.pts[i], e.pts[i+1]), len(idx.refs))
			idx.refs = append(idx.refs, segmentRef{e, i})
		}
	}
	return idx
}

func (IndexedEdgeSetIntersector) ComputeIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool) {
	idx := newSegmentIndex(edges)
	for i, ref := range idx.refs {
		box := rtree.SegmentBox(ref.edge.pts[ref.segIdx], ref.edge.pts[ref.segIdx+1])
		err := idx.tree.RangeSearch(box, func(j int) error {
			// Each unordered pair is only tested once.
			if j <= i {
				return nil
			}
			other := idx.refs[j]
			if !testAllSegments && other.edge == ref.edge {
				return nil
			}
			si.AddIntersections(ref.edge, ref.segIdx, other.edge, other.segIdx)
			if si.IsDone() {
				return rtree.Stop
			}
			return nil
		})
		if err != nil || si.IsDone() {
			return
		}
	}
}

func (IndexedEdgeSetIntersector) ComputeIntersectionsBetween(edges0, edges1 []*Edge, si *SegmentIntersector) {
	idx := newSegmentIndex(edges1)
	for _, e0 := range edges0 {
		for i := 0; i < len(e0.pts)-1; i++ {
			box := rtree.SegmentBox(e0.pts[i], e0.pts[i+1])
			err := idx.tree.RangeSearch(box, func(j int) error {
				other := idx.refs[j]
				si.AddIntersections(e0, i, other.edge, other.segIdx)
				if si.IsDone() {
					return rtree.Stop
				}
				return nil
			})
			if err != nil || si.IsDone() {
				return
			}
		}
	}
}

var (
	_ EdgeSetIntersector = SimpleEdgeSetIntersector{}
	_ EdgeSetIntersector = IndexedEdgeSetIntersector{}
)
