package geomgraph

import (
	"github.com/twpayne/go-geom/xy/location"
)

// linkState is the state of the scan that links incoming result edges to
// outgoing result edges around a node.
type linkState int

const (
	scanningForIncoming linkState = iota
	linkingToOutgoing
)

// DirectedEdgeStar is an EdgeEndStar made up of the outgoing directed edges
// at a node. The incoming directed edges are the Syms of the outgoing ones.
type DirectedEdgeStar struct {
	EdgeEndStar

	label           *Label
	resultAreaEdges []*DirectedEdge
}

func NewDirectedEdgeStar() *DirectedEdgeStar {
	return &DirectedEdgeStar{EdgeEndStar: *NewEdgeEndStar()}
}

// Insert adds an outgoing directed edge to the star. Only directed edges may
// be inserted.
func (s *DirectedEdgeStar) Insert(e Ender) {
	_, ok := e.(*DirectedEdge)
	assertf(ok, "DirectedEdgeStar can only hold directed edges, got %T", e)
	s.EdgeEndStar.Insert(e)
	s.resultAreaEdges = nil
}

// Edges gives the outgoing directed edges in counter-clockwise order.
func (s *DirectedEdgeStar) Edges() []*DirectedEdge {
	des := make([]*DirectedEdge, len(s.ends))
	for i, e := range s.ends {
		des[i] = e.(*DirectedEdge)
	}
	return des
}

// Label is the label of the node, as derived from its incident edges by
// ComputeLabelling.
func (s *DirectedEdgeStar) Label() *Label { return s.label }

// OutgoingDegree counts the outgoing directed edges that are in the result.
func (s *DirectedEdgeStar) OutgoingDegree() int {
	var degree int
	for _, de := range s.Edges() {
		if de.IsInResult() {
			degree++
		}
	}
	return degree
}

// OutgoingDegreeOf counts the outgoing directed edges that belong to a ring.
func (s *DirectedEdgeStar) OutgoingDegreeOf(ring EdgeRing) int {
	var degree int
	for _, de := range s.Edges() {
		if de.EdgeRing() == ring {
			degree++
		}
	}
	return degree
}

// RightmostEdge gives the directed edge that is furthest clockwise from
// straight up, or nil if the star is empty.
func (s *DirectedEdgeStar) RightmostEdge() *DirectedEdge {
	des := s.Edges()
	if len(des) == 0 {
		return nil
	}
	de0 := des[0]
	if len(des) == 1 {
		return de0
	}
	deLast := des[len(des)-1]

	north0 := de0.Quadrant().IsNorthern()
	northLast := deLast.Quadrant().IsNorthern()
	switch {
	case north0 && northLast:
		return de0
	case !north0 && !northLast:
		return deLast
	}

	// The edges are in different hemispheres, so pick whichever isn't
	// horizontal.
	if de0.Dy() != 0 {
		return de0
	}
	if deLast.Dy() != 0 {
		return deLast
	}
	assertf(false, "found two horizontal edges incident on node at %s", formatCoord(de0.Coordinate()))
	return nil
}

// ComputeLabelling completes the labels of the star's directed edges, and
// then computes the label of the node: the node is in the interior of a
// geometry if any incident edge is in its interior or boundary.
func (s *DirectedEdgeStar) ComputeLabelling(graphs [2]*GeometryGraph) error {
	if err := s.EdgeEndStar.ComputeLabelling(graphs); err != nil {
		return err
	}
	s.label = NewLabel(location.None)
	for _, de := range s.Edges() {
		edgeLabel := de.Edge().Label()
		for gi := 0; gi < 2; gi++ {
			loc := edgeLabel.Location(gi)
			if loc == location.Interior || loc == location.Boundary {
				s.label.SetLocation(gi, location.Interior)
			}
		}
	}
	return nil
}

// MergeSymLabels merges the label of each outgoing directed edge with the
// label of its Sym. Both directions then hold everything known about the
// edge.
func (s *DirectedEdgeStar) MergeSymLabels() {
	for _, de := range s.Edges() {
		de.Label().Merge(de.Sym().Label())
	}
}

// UpdateLabelling fills in the unknown locations of the outgoing directed
// edges using the node's label.
func (s *DirectedEdgeStar) UpdateLabelling(nodeLabel *Label) {
	for _, de := range s.Edges() {
		lbl := de.Label()
		lbl.SetAllLocationsIfNull(0, nodeLabel.Location(0))
		lbl.SetAllLocationsIfNull(1, nodeLabel.Location(1))
	}
}

// ResultAreaEdges gives the outgoing directed edges that are in the result
// in either direction, in counter-clockwise order. The result is cached, so
// must only be requested once the in-result flags are final.
func (s *DirectedEdgeStar) ResultAreaEdges() []*DirectedEdge {
	if s.resultAreaEdges != nil {
		return s.resultAreaEdges
	}
	s.resultAreaEdges = []*DirectedEdge{}
	for _, de := range s.Edges() {
		if de.IsInResult() || de.Sym().IsInResult() {
			s.resultAreaEdges = append(s.resultAreaEdges, de)
		}
	}
	return s.resultAreaEdges
}

// LinkResultDirectedEdges links each incoming result area edge to the next
// outgoing result area edge counter-clockwise from it. Incoming and outgoing
// result edges must alternate around the node, otherwise a topology error is
// returned.
func (s *DirectedEdgeStar) LinkResultDirectedEdges() error {
	var firstOut, incoming *DirectedEdge
	state := scanningForIncoming
	for _, nextOut := range s.ResultAreaEdges() {
		nextIn := nextOut.Sym()
		if !nextOut.Label().IsArea() {
			continue
		}
		if firstOut == nil && nextOut.IsInResult() {
			firstOut = nextOut
		}
		switch state {
		case scanningForIncoming:
			if nextIn.IsInResult() {
				incoming = nextIn
				state = linkingToOutgoing
			}
		case linkingToOutgoing:
			if nextOut.IsInResult() {
				incoming.SetNext(nextOut)
				state = scanningForIncoming
			} else if nextIn.IsInResult() {
				return newTopologyError(nextIn.Coordinate(), "two incoming result edges without an outgoing edge between them")
			}
		}
	}
	if state == linkingToOutgoing {
		if firstOut == nil {
			return newTopologyError(s.Coordinate(), "no outgoing dirEdge found")
		}
		incoming.SetNext(firstOut)
	}
	return nil
}

// LinkMinimalDirectedEdges links the result edges belonging to ring into
// minimal rings, scanning clockwise so that each incoming edge is linked to
// the closest outgoing edge on its right.
func (s *DirectedEdgeStar) LinkMinimalDirectedEdges(ring EdgeRing) {
	var firstOut, incoming *DirectedEdge
	state := scanningForIncoming
	edges := s.ResultAreaEdges()
	for i := len(edges) - 1; i >= 0; i-- {
		nextOut := edges[i]
		nextIn := nextOut.Sym()
		if firstOut == nil && nextOut.EdgeRing() == ring {
			firstOut = nextOut
		}
		switch state {
		case scanningForIncoming:
			if nextIn.EdgeRing() == ring {
				incoming = nextIn
				state = linkingToOutgoing
			}
		case linkingToOutgoing:
			if nextOut.EdgeRing() == ring {
				incoming.SetNextMin(nextOut)
				state = scanningForIncoming
			}
		}
	}
	if state == linkingToOutgoing {
		assertf(firstOut != nil, "found null for first outgoing dirEdge")
		incoming.SetNextMin(firstOut)
	}
}

// LinkAllDirectedEdges links every incoming directed edge to the next
// outgoing directed edge counter-clockwise from it, regardless of whether it's in
// the result.
func (s *DirectedEdgeStar) LinkAllDirectedEdges() {
	des := s.Edges()
	if len(des) == 0 {
		return
	}
	var prevOut, firstIn *DirectedEdge
	for i := len(des) - 1; i >= 0; i-- {
		nextOut := des[i]
		nextIn := nextOut.Sym()
		if firstIn == nil {
			firstIn = nextIn
		}
		if prevOut != nil {
			nextIn.SetNext(prevOut)
		}
		prevOut = nextOut
	}
	firstIn.SetNext(prevOut)
}

// FindCoveredLineEdges marks each line edge at the node as covered if it
// lies inside the result area.
//
// The scan starts from the location just before the first area edge in the
// result. The location is then tracked around the star: each result area
// edge (in either direction) switches it, and each line edge is marked with
// the current location. A line edge is therefore marked by whichever result
// area edge most recently preceded it in counter-clockwise order.
func (s *DirectedEdgeStar) FindCoveredLineEdges() {
	des := s.Edges()

	startLoc := location.None
	for _, nextOut := range des {
		nextIn := nextOut.Sym()
		if nextOut.IsLineEdge() {
			continue
		}
		if nextOut.IsInResult() {
			startLoc = location.Interior
			break
		}
		if nextIn.IsInResult() {
			startLoc = location.Exterior
			break
		}
	}
	if startLoc == location.None {
		return
	}

	currLoc := startLoc
	for _, nextOut := range des {
		nextIn := nextOut.Sym()
		if nextOut.IsLineEdge() {
			nextOut.Edge().SetCovered(currLoc == location.Interior)
			continue
		}
		if nextOut.IsInResult() {
			currLoc = location.Exterior
		}
		if nextIn.IsInResult() {
			currLoc = location.Interior
		}
	}
}

// ComputeDepths propagates side depths around the star, starting from the
// known depths of de. The right depth of each edge is the left depth of the
// edge before it (counter-clockwise), so walking the full star must arrive
// back at the right depth of de. A topology error is returned if it doesn't,
// or if a propagated depth conflicts with one already assigned.
func (s *DirectedEdgeStar) ComputeDepths(de *DirectedEdge) error {
	des := s.Edges()
	edgeIndex := s.FindIndex(de)
	assertf(edgeIndex >= 0, "directed edge is not in star")

	startDepth := de.Depth(Left)
	targetLastDepth := de.Depth(Right)
	nextDepth, err := computeDepths(des[edgeIndex+1:], startDepth)
	if err != nil {
		return err
	}
	lastDepth, err := computeDepths(des[:edgeIndex], nextDepth)
	if err != nil {
		return err
	}
	if lastDepth != targetLastDepth {
		return newTopologyError(de.Coordinate(), "depth mismatch")
	}
	return nil
}

func computeDepths(des []*DirectedEdge, startDepth int) (int, error) {
	currDepth := startDepth
	for _, de := range des {
		if err := de.SetEdgeDepths(Right, currDepth); err != nil {
			return 0, err
		}
		currDepth = de.Depth(Left)
	}
	return currDepth, nil
}

func (s *DirectedEdgeStar) String() string {
	return "DirectedEdgeStar: " + s.EdgeEndStar.String()
}
