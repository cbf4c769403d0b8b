package geomgraph

import (
	"fmt"
	"io"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/location"
)

// PlanarGraph is a directed graph embedded in the plane. It holds a list of
// edges, the edge ends (usually directed edges) that have been added, and
// the nodes where they meet.
//
// The graph is only planar once its edges have been noded, i.e. split so
// that they only meet at their endpoints.
type PlanarGraph struct {
	edges    []*Edge
	nodes    *NodeMap
	edgeEnds []Ender
}

// NewPlanarGraph creates an empty graph that uses factory to create its
// nodes.
func NewPlanarGraph(factory NodeFactory) *PlanarGraph {
	return &PlanarGraph{nodes: NewNodeMap(factory)}
}

func (g *PlanarGraph) Edges() []*Edge     { return g.edges }
func (g *PlanarGraph) EdgeEnds() []Ender  { return g.edgeEnds }
func (g *PlanarGraph) Nodes() []*Node     { return g.nodes.Nodes() }
func (g *PlanarGraph) NodeMap() *NodeMap  { return g.nodes }
func (g *PlanarGraph) InsertEdge(e *Edge) { g.edges = append(g.edges, e) }

// Add adds an edge end to the graph, inserting it into the star of the node
// at its origin.
func (g *PlanarGraph) Add(e Ender) {
	g.nodes.Add(e)
	g.edgeEnds = append(g.edgeEnds, e)
}

func (g *PlanarGraph) AddNode(n *Node) *Node            { return g.nodes.AddNode(n) }
func (g *PlanarGraph) AddNodeAt(coord geom.Coord) *Node { return g.nodes.AddNodeAt(coord) }
func (g *PlanarGraph) Find(coord geom.Coord) *Node      { return g.nodes.Find(coord) }

// AddEdges adds edges to the graph, along with a pair of directed edges for
// each one.
func (g *PlanarGraph) AddEdges(edges []*Edge) {
	for _, e := range edges {
		g.edges = append(g.edges, e)
		fwd, rev := NewDirectedEdgePair(e)
		g.Add(fwd)
		g.Add(rev)
	}
}

// IsBoundaryNode checks if there's a node at coord that is on the boundary
// of a geometry.
func (g *PlanarGraph) IsBoundaryNode(geomIndex int, coord geom.Coord) bool {
	n := g.nodes.Find(coord)
	if n == nil || n.label == nil {
		return false
	}
	return n.label.Location(geomIndex) == location.Boundary
}

// LinkResultDirectedEdges links the result edges at every node. The graph's
// nodes must have DirectedEdgeStars.
func (g *PlanarGraph) LinkResultDirectedEdges() error {
	return LinkResultDirectedEdges(g.Nodes())
}

// LinkResultDirectedEdges links the result edges at each of the nodes.
func LinkResultDirectedEdges(nodes []*Node) error {
	for _, n := range nodes {
		if err := n.DirectedEdgeStar().LinkResultDirectedEdges(); err != nil {
			return err
		}
	}
	return nil
}

// LinkAllDirectedEdges links all directed edges at every node, regardless of
// whether they're in the result.
func (g *PlanarGraph) LinkAllDirectedEdges() {
	for _, n := range g.Nodes() {
		n.DirectedEdgeStar().LinkAllDirectedEdges()
	}
}

// FindEdgeEnd gives the first edge end added for edge e, or nil if there is
// none.
func (g *PlanarGraph) FindEdgeEnd(e *Edge) Ender {
	for _, ee := range g.edgeEnds {
		if ee.End().Edge() == e {
			return ee
		}
	}
	return nil
}

// FindEdge gives the edge whose first segment runs from p0 to p1, or nil if
// there is none.
func (g *PlanarGraph) FindEdge(p0, p1 geom.Coord) *Edge {
	for _, e := range g.edges {
		if equals2D(p0, e.pts[0]) && equals2D(p1, e.pts[1]) {
			return e
		}
	}
	return nil
}

// FindEdgeInSameDirection gives an edge which starts (or ends) at p0 and
// whose first (or last) segment heads in the same direction as the segment
// p0 to p1. It returns nil if there is none.
func (g *PlanarGraph) FindEdgeInSameDirection(p0, p1 geom.Coord) *Edge {
	for _, e := range g.edges {
		n := len(e.pts)
		if matchInSameDirection(p0, p1, e.pts[0], e.pts[1]) {
			return e
		}
		if matchInSameDirection(p0, p1, e.pts[n-1], e.pts[n-2]) {
			return e
		}
	}
	return nil
}

// matchInSameDirection checks if two segments start at the same point and
// head in the same direction. The segments don't need to be the same length.
func matchInSameDirection(p0, p1, ep0, ep1 geom.Coord) bool {
	if !equals2D(p0, ep0) {
		return false
	}
	return orientationIndex(p0, p1, ep1) == 0 &&
		QuadrantOfSegment(p0, p1) == QuadrantOfSegment(ep0, ep1)
}

// Dump writes the edges of the graph, along with their intersections, to w.
func (g *PlanarGraph) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Edges:"); err != nil {
		return err
	}
	for i, e := range g.edges {
		if _, err := fmt.Fprintf(w, "edge %d:\n%v\n%v", i, e, e.eiList); err != nil {
			return err
		}
	}
	return nil
}
