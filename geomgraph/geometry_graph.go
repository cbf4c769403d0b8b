package geomgraph

import (
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/location"
)

// GraphOption configures a GeometryGraph.
type GraphOption func(*graphOptions)

type graphOptions struct {
	rule BoundaryNodeRule
	log  logrus.FieldLogger
	esi  EdgeSetIntersector
}

// WithBoundaryNodeRule sets the rule used to decide if the endpoints of
// linear components are on the boundary. The default is the mod-2 rule.
func WithBoundaryNodeRule(rule BoundaryNodeRule) GraphOption {
	return func(o *graphOptions) { o.rule = rule }
}

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) GraphOption {
	return func(o *graphOptions) { o.log = log }
}

// WithEdgeSetIntersector sets the strategy used to find candidate segment
// pairs while noding. The default uses an R-Tree index.
func WithEdgeSetIntersector(esi EdgeSetIntersector) GraphOption {
	return func(o *graphOptions) { o.esi = esi }
}

// GeometryGraph is the planar graph of a single geometry. Its edges are the
// linear components of the geometry (lines and polygon rings), and its nodes
// are the points, the endpoints of lines, the ring start points, and (once
// noded) the points where edges intersect.
type GeometryGraph struct {
	*PlanarGraph

	parent   geom.T
	argIndex int
	rule     BoundaryNodeRule
	log      logrus.FieldLogger
	esi      EdgeSetIntersector

	// Edges of lines and rings, keyed by the orientation independent key
	// of their points. go-geom builds a new value for each ring or line it
	// hands out, so components can't be keyed by identity.
	lineEdgeMap map[string]*Edge

	// The boundary determination rule is only applied to geometries that
	// can have linear boundaries. It's disabled for multi polygons, which
	// only have ring edges.
	useBoundaryDeterminationRule bool

	boundaryNodes []*Node

	hasTooFewPoints bool
	invalidPoint    geom.Coord
}

// NewGeometryGraph creates the graph for g, which is used as geometry
// argIndex (0 or 1) in labels. The graph has edges and nodes for g, but is
// not noded.
func NewGeometryGraph(argIndex int, g geom.T, opts ...GraphOption) *GeometryGraph {
	o := graphOptions{
		rule: Mod2BoundaryNodeRule{},
		log:  logrus.StandardLogger(),
		esi:  IndexedEdgeSetIntersector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	gg := &GeometryGraph{
		PlanarGraph:                  NewPlanarGraph(BasicNodeFactory{}),
		parent:                       g,
		argIndex:                     argIndex,
		rule:                         o.rule,
		log:                          o.log.WithField("arg", argIndex),
		esi:                          o.esi,
		lineEdgeMap:                  make(map[string]*Edge),
		useBoundaryDeterminationRule: true,
	}
	if g != nil {
		gg.Add(g)
	}
	return gg
}

func (gg *GeometryGraph) Geometry() geom.T                   { return gg.parent }
func (gg *GeometryGraph) ArgIndex() int                      { return gg.argIndex }
func (gg *GeometryGraph) BoundaryNodeRule() BoundaryNodeRule { return gg.rule }

// HasTooFewPoints reports whether the geometry had a line with fewer than 2
// distinct points or a ring with fewer than 4 points. Such components are
// left out of the graph.
func (gg *GeometryGraph) HasTooFewPoints() bool { return gg.hasTooFewPoints }

// InvalidPoint is the first point of the last component that had too few
// points.
func (gg *GeometryGraph) InvalidPoint() geom.Coord { return gg.invalidPoint }

// FindEdge gives the edge created for a line string or linear ring that was
// added to the graph, or nil if there is none.
func (gg *GeometryGraph) FindEdge(component geom.T) *Edge {
	var coords []geom.Coord
	switch c := component.(type) {
	case *geom.LineString:
		coords = c.Coords()
	case *geom.LinearRing:
		coords = c.Coords()
	default:
		return nil
	}
	return gg.lineEdgeMap[orientedKey(removeRepeatedPoints(copyCoords(coords)))]
}

// BoundaryNodes gives the nodes on the boundary of the geometry.
func (gg *GeometryGraph) BoundaryNodes() []*Node {
	if gg.boundaryNodes == nil {
		gg.boundaryNodes = gg.nodes.BoundaryNodes(gg.argIndex)
	}
	return gg.boundaryNodes
}

// BoundaryPoints gives copies of the coordinates of the boundary nodes.
func (gg *GeometryGraph) BoundaryPoints() []geom.Coord {
	nodes := gg.BoundaryNodes()
	pts := make([]geom.Coord, len(nodes))
	for i, n := range nodes {
		pts[i] = copyCoord(n.coord)
	}
	return pts
}

// Add adds the components of a geometry to the graph. It panics if the
// geometry type isn't supported.
func (gg *GeometryGraph) Add(g geom.T) {
	switch g := g.(type) {
	case *geom.Point:
		if len(g.FlatCoords()) > 0 {
			gg.AddPoint(g.Coords())
		}
	case *geom.LineString:
		gg.addLineString(g.Coords())
	case *geom.LinearRing:
		gg.addLineString(g.Coords())
	case *geom.Polygon:
		gg.addPolygon(g)
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			gg.Add(g.Point(i))
		}
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			gg.Add(g.LineString(i))
		}
	case *geom.MultiPolygon:
		// Polygon rings are closed, so can't contribute boundary points.
		gg.useBoundaryDeterminationRule = false
		for i := 0; i < g.NumPolygons(); i++ {
			gg.Add(g.Polygon(i))
		}
	case *geom.GeometryCollection:
		for _, sub := range g.Geoms() {
			gg.Add(sub)
		}
	default:
		assertf(false, "unsupported geometry type: %T", g)
	}
}

func (gg *GeometryGraph) addPolygon(poly *geom.Polygon) {
	for i := 0; i < poly.NumLinearRings(); i++ {
		if i == 0 {
			gg.addPolygonRing(poly.LinearRing(i), location.Exterior, location.Interior)
		} else {
			gg.addPolygonRing(poly.LinearRing(i), location.Interior, location.Exterior)
		}
	}
}

// addPolygonRing adds a ring of a polygon. The left and right locations are
// for a clockwise ring, and are swapped for a counter-clockwise ring.
func (gg *GeometryGraph) addPolygonRing(ring *geom.LinearRing, cwLeft, cwRight location.Type) {
	if ring.NumCoords() == 0 {
		gg.recordTooFewPoints(nil, "polygon ring is empty")
		return
	}
	coords := removeRepeatedPoints(copyCoords(ring.Coords()))
	if len(coords) < 4 {
		gg.recordTooFewPoints(coords[0], "polygon ring has too few points")
		return
	}

	left, right := cwLeft, cwRight
	if isCCW(coords) {
		left, right = cwRight, cwLeft
	}
	e := NewEdge(coords, NewGeomAreaLabel(gg.argIndex, location.Boundary, left, right))
	gg.lineEdgeMap[orientedKey(coords)] = e
	gg.InsertEdge(e)
	gg.insertPoint(coords[0], location.Boundary)
}

func (gg *GeometryGraph) addLineString(coords []geom.Coord) {
	if len(coords) == 0 {
		return
	}
	coords = removeRepeatedPoints(copyCoords(coords))
	if len(coords) < 2 {
		gg.recordTooFewPoints(coords[0], "line has too few points")
		return
	}

	e := NewEdge(coords, NewGeomLabel(gg.argIndex, location.Interior))
	gg.lineEdgeMap[orientedKey(coords)] = e
	gg.InsertEdge(e)

	// Both endpoints are inserted even if the line is closed. The second
	// insertion of the same point toggles it back out of the boundary.
	gg.insertBoundaryPoint(coords[0])
	gg.insertBoundaryPoint(coords[len(coords)-1])
}

// recordTooFewPoints flags the graph as built from invalid input. pt is nil
// when the offending component has no points at all.
func (gg *GeometryGraph) recordTooFewPoints(pt geom.Coord, msg string) {
	gg.hasTooFewPoints = true
	if pt == nil {
		gg.log.Warn(msg)
		return
	}
	gg.invalidPoint = copyCoord(pt)
	gg.log.WithFields(logrus.Fields{
		"x": pt[0],
		"y": pt[1],
	}).Warn(msg)
}

// AddEdge adds an edge that was computed externally (e.g. by an overlay).
// Its endpoints are inserted as boundary nodes.
func (gg *GeometryGraph) AddEdge(e *Edge) {
	gg.InsertEdge(e)
	gg.insertPoint(e.pts[0], location.Boundary)
	gg.insertPoint(e.pts[len(e.pts)-1], location.Boundary)
}

// AddPoint adds a point in the interior of the geometry.
func (gg *GeometryGraph) AddPoint(pt geom.Coord) {
	gg.insertPoint(pt, location.Interior)
}

func (gg *GeometryGraph) insertPoint(coord geom.Coord, onLocation location.Type) {
	n := gg.nodes.AddNodeAt(coord)
	n.SetLabelAt(gg.argIndex, onLocation)
	gg.boundaryNodes = nil
}

// insertBoundaryPoint records one more line endpoint at coord, and uses the
// boundary node rule to decide if the node is now on the boundary.
func (gg *GeometryGraph) insertBoundaryPoint(coord geom.Coord) {
	n := gg.nodes.AddNodeAt(coord)
	boundaryCount := 1
	if n.label.LocationAt(gg.argIndex, On) == location.Boundary {
		boundaryCount++
	}
	n.label.SetLocation(gg.argIndex, DetermineBoundary(gg.rule, boundaryCount))
	gg.boundaryNodes = nil
}

// ComputeSelfNodes computes the intersections between the graph's edges,
// records them in the edges, and adds nodes for them.
//
// Ring edges of polygonal geometries are assumed not to self intersect,
// unless computeRingSelfNodes is set. If isDoneIfProperInt is set, noding
// stops at the first proper intersection.
func (gg *GeometryGraph) ComputeSelfNodes(li LineIntersector, computeRingSelfNodes, isDoneIfProperInt bool) *SegmentIntersector {
	si := NewSegmentIntersector(li, true, false)
	si.SetIsDoneIfProperInt(isDoneIfProperInt)

	var isRings bool
	switch gg.parent.(type) {
	case *geom.LinearRing, *geom.Polygon, *geom.MultiPolygon:
		isRings = true
	}
	computeAllSegments := computeRingSelfNodes || !isRings
	gg.esi.ComputeIntersections(gg.edges, si, computeAllSegments)
	gg.addSelfIntersectionNodes()

	gg.log.WithFields(logrus.Fields{
		"edges":         len(gg.edges),
		"tests":         si.NumTests(),
		"intersections": si.NumIntersections(),
		"nodes":         gg.nodes.Len(),
	}).Debug("computed self nodes")
	return si
}

// ComputeEdgeIntersections computes the intersections between the edges of
// this graph and the edges of other, and records them in the edges of both
// graphs. No nodes are added.
func (gg *GeometryGraph) ComputeEdgeIntersections(other *GeometryGraph, li LineIntersector, includeProper bool) *SegmentIntersector {
	si := NewSegmentIntersector(li, includeProper, true)
	si.SetBoundaryNodes(gg.BoundaryNodes(), other.BoundaryNodes())
	gg.esi.ComputeIntersectionsBetween(gg.edges, other.edges, si)

	gg.log.WithFields(logrus.Fields{
		"tests":         si.NumTests(),
		"intersections": si.NumIntersections(),
		"proper":        si.HasProperIntersection(),
	}).Debug("computed edge intersections")
	return si
}

// ComputeSplitEdges splits each edge of the graph at its intersections, and
// adds the resulting edges to edges.
func (gg *GeometryGraph) ComputeSplitEdges(edges *EdgeList) {
	for _, e := range gg.edges {
		e.eiList.AddSplitEdges(edges)
	}
}

func (gg *GeometryGraph) addSelfIntersectionNodes() {
	for _, e := range gg.edges {
		eLoc := e.label.Location(gg.argIndex)
		for _, ei := range e.eiList.Intersections() {
			gg.addSelfIntersectionNode(ei.Coord, eLoc)
		}
	}
}

// addSelfIntersectionNode adds a node for a self intersection. Intersections
// at existing boundary nodes are ignored, so that a boundary node is never
// downgraded to interior.
func (gg *GeometryGraph) addSelfIntersectionNode(coord geom.Coord, loc location.Type) {
	if gg.IsBoundaryNode(gg.argIndex, coord) {
		return
	}
	if loc == location.Boundary && gg.useBoundaryDeterminationRule {
		gg.insertBoundaryPoint(coord)
	} else {
		gg.insertPoint(coord, loc)
	}
}
