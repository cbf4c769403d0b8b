package geomgraph

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"golang.org/x/sync/errgroup"
)

// BuildPair builds and self-nodes the graphs for two geometries. The graphs
// share no state, so they're built concurrently. A panic while building
// either graph is returned as an error.
func BuildPair(g0, g1 geom.T, computeRingSelfNodes bool, opts ...GraphOption) ([2]*GeometryGraph, error) {
	var graphs [2]*GeometryGraph
	var grp errgroup.Group
	for i, g := range [2]geom.T{g0, g1} {
		i, g := i, g
		grp.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Newf("building graph %d: %v", i, r)
				}
			}()
			gg := NewGeometryGraph(i, g, opts...)
			gg.ComputeSelfNodes(NewRobustLineIntersector(), computeRingSelfNodes, false)
			graphs[i] = gg
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return [2]*GeometryGraph{}, err
	}
	return graphs, nil
}

// SplitPair computes the intersections between the edges of two self-noded
// graphs, and then splits the edges of both graphs at their intersections.
// Split edges that are equal (in either direction) are merged into a single
// edge.
func SplitPair(graphs [2]*GeometryGraph, li LineIntersector, includeProper bool) *EdgeList {
	graphs[0].ComputeEdgeIntersections(graphs[1], li, includeProper)

	var split [2]*EdgeList
	for i, gg := range graphs {
		split[i] = NewEdgeList()
		gg.ComputeSplitEdges(split[i])
	}
	edges := NewEdgeList()
	for _, l := range split {
		for _, e := range l.Edges() {
			InsertUniqueEdge(edges, e)
		}
	}
	return edges
}

// InsertUniqueEdge adds e to edges, unless an equal edge is already there.
// In that case, e's label is merged into the existing edge's label, and its
// locations are accumulated into the existing edge's depth.
func InsertUniqueEdge(edges *EdgeList, e *Edge) {
	existing := edges.FindEqualEdge(e)
	if existing == nil {
		edges.Add(e)
		return
	}

	toMerge := e.label
	if !existing.IsPointwiseEqual(e) {
		toMerge = e.label.Clone()
		toMerge.Flip()
	}
	depth := existing.Depth()
	if depth.IsNull() {
		depth.Add(existing.label)
	}
	depth.Add(toMerge)
	existing.label.Merge(toMerge)
}

// ComputeLabelsFromDepths updates the side locations of edges that have
// accumulated depths. An edge with the same depth on both sides for a
// geometry has collapsed, so becomes a line edge for that geometry.
func ComputeLabelsFromDepths(edges *EdgeList) {
	for _, e := range edges.Edges() {
		depth := e.Depth()
		if depth.IsNull() {
			continue
		}
		depth.Normalize()
		for gi := 0; gi < 2; gi++ {
			if e.label.IsNull(gi) || !e.label.IsArea() || depth.IsNullGeom(gi) {
				continue
			}
			if depth.Delta(gi) == 0 {
				e.label.ToLine(gi)
			} else {
				assertf(!depth.IsNullAt(gi, Left), "depth of left side has not been initialized")
				e.label.SetLocationAt(gi, Left, depth.Location(gi, Left))
				assertf(!depth.IsNullAt(gi, Right), "depth of right side has not been initialized")
				e.label.SetLocationAt(gi, Right, depth.Location(gi, Right))
			}
		}
	}
}

// ReplaceCollapsedEdges gives a copy of edges with each collapsed area edge
// replaced by the line edge that it collapsed to.
func ReplaceCollapsedEdges(edges *EdgeList) *EdgeList {
	out := NewEdgeList()
	for _, e := range edges.Edges() {
		if e.IsCollapsed() {
			e = e.CollapsedEdge()
		}
		out.Add(e)
	}
	return out
}

// BuildTopology builds a fully labelled planar graph from the noded edges of
// two geometries. Each node has a DirectedEdgeStar, and each directed edge
// is labelled with its relationship to both geometries.
func BuildTopology(graphs [2]*GeometryGraph, edges *EdgeList) (*PlanarGraph, error) {
	ComputeLabelsFromDepths(edges)
	edges = ReplaceCollapsedEdges(edges)

	pg := NewPlanarGraph(DirectedEdgeNodeFactory{})
	for gi, gg := range graphs {
		for _, n := range gg.Nodes() {
			pg.AddNodeAt(n.coord).SetLabelAt(gi, n.label.Location(gi))
		}
	}
	pg.AddEdges(edges.Edges())

	for _, n := range pg.Nodes() {
		star := n.DirectedEdgeStar()
		if err := star.ComputeLabelling(graphs); err != nil {
			return nil, err
		}
		star.MergeSymLabels()
		n.label.Merge(star.Label())
	}

	for _, n := range pg.Nodes() {
		if n.IsIsolated() {
			gi := 1
			if n.label.IsNull(0) {
				gi = 0
			}
			n.label.SetLocation(gi, locatePoint(n.coord, graphs[gi].Geometry(), graphs[gi].BoundaryNodeRule()))
		}
		n.DirectedEdgeStar().UpdateLabelling(n.label)
	}
	return pg, nil
}
