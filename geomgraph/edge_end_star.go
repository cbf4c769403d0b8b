package geomgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/location"
)

// Star is the collection of edge ends incident on a node.
type Star interface {
	Insert(e Ender)
	Ends() []Ender
	Degree() int
	ComputeLabelling(graphs [2]*GeometryGraph) error
}

// EdgeEndStar is the set of edge ends leaving a single node, ordered
// counter-clockwise by direction (see EdgeEnd.CompareDirection). Inserting an
// edge end with the same direction as an existing one replaces it.
type EdgeEndStar struct {
	ends []Ender

	// The location of the node relative to the area of each geometry,
	// computed lazily.
	ptInAreaLocation [2]location.Type
}

// NewEdgeEndStar creates an empty star.
func NewEdgeEndStar() *EdgeEndStar {
	return &EdgeEndStar{ptInAreaLocation: [2]location.Type{location.None, location.None}}
}

func (s *EdgeEndStar) Insert(e Ender) {
	ee := e.End()
	i := sort.Search(len(s.ends), func(i int) bool {
		return s.ends[i].End().CompareDirection(ee) >= 0
	})
	if i < len(s.ends) && s.ends[i].End().CompareDirection(ee) == 0 {
		s.ends[i] = e
		return
	}
	s.ends = append(s.ends, nil)
	copy(s.ends[i+1:], s.ends[i:])
	s.ends[i] = e
}

// Ends gives the edge ends in counter-clockwise order.
func (s *EdgeEndStar) Ends() []Ender { return s.ends }
func (s *EdgeEndStar) Degree() int   { return len(s.ends) }

// Coordinate is the location of the star's node, or nil if the star is
// empty.
func (s *EdgeEndStar) Coordinate() geom.Coord {
	if len(s.ends) == 0 {
		return nil
	}
	return s.ends[0].End().Coordinate()
}

// NextCW gives the edge end immediately clockwise from e.
func (s *EdgeEndStar) NextCW(e Ender) Ender {
	i := s.FindIndex(e)
	if i < 0 {
		return nil
	}
	if i == 0 {
		return s.ends[len(s.ends)-1]
	}
	return s.ends[i-1]
}

// FindIndex gives the position of e in the star, or -1 if it isn't present.
func (s *EdgeEndStar) FindIndex(e Ender) int {
	for i, other := range s.ends {
		if other == e {
			return i
		}
	}
	return -1
}

// ComputeLabelling completes the labels of the star's edge ends.
//
// Side locations are propagated around the star for each geometry. Any
// locations that are still unknown afterwards are for a geometry that the
// edge end is isolated from, so they're filled in from the location of the
// node itself: exterior if the geometry has a collapsed area edge at the
// node, and otherwise the location of the node relative to the geometry's
// area.
func (s *EdgeEndStar) ComputeLabelling(graphs [2]*GeometryGraph) error {
	s.computeEdgeEndLabels(graphs[0].BoundaryNodeRule())
	for gi := 0; gi < 2; gi++ {
		if err := s.PropagateSideLabels(gi); err != nil {
			return err
		}
	}

	var hasDimensionalCollapseEdge [2]bool
	for _, e := range s.ends {
		lbl := e.End().Label()
		for gi := 0; gi < 2; gi++ {
			if lbl.IsLine(gi) && lbl.Location(gi) == location.Boundary {
				hasDimensionalCollapseEdge[gi] = true
			}
		}
	}

	for _, e := range s.ends {
		ee := e.End()
		lbl := ee.Label()
		for gi := 0; gi < 2; gi++ {
			if !lbl.IsAnyNull(gi) {
				continue
			}
			var loc location.Type
			if hasDimensionalCollapseEdge[gi] {
				loc = location.Exterior
			} else {
				loc = s.areaLocation(gi, ee.Coordinate(), graphs)
			}
			lbl.SetAllLocationsIfNull(gi, loc)
		}
	}
	return nil
}

func (s *EdgeEndStar) computeEdgeEndLabels(rule BoundaryNodeRule) {
	for _, e := range s.ends {
		e.ComputeLabel(rule)
	}
}

func (s *EdgeEndStar) areaLocation(geomIndex int, p geom.Coord, graphs [2]*GeometryGraph) location.Type {
	if graphs[geomIndex] == nil {
		return location.Exterior
	}
	if s.ptInAreaLocation[geomIndex] == location.None {
		s.ptInAreaLocation[geomIndex] = locatePointInArea(p, graphs[geomIndex].Geometry())
	}
	return s.ptInAreaLocation[geomIndex]
}

// IsAreaLabelsConsistent checks that the side locations of the star's area
// edges agree with each other for the graph's geometry.
func (s *EdgeEndStar) IsAreaLabelsConsistent(graph *GeometryGraph) bool {
	s.computeEdgeEndLabels(graph.BoundaryNodeRule())
	return s.CheckAreaLabelsConsistent(0)
}

// CheckAreaLabelsConsistent walks around the star checking that the right
// location of each edge end matches the left location of the previous one,
// and that no edge end has the same location on both sides.
func (s *EdgeEndStar) CheckAreaLabelsConsistent(geomIndex int) bool {
	if len(s.ends) == 0 {
		return true
	}
	startLoc := s.ends[len(s.ends)-1].End().Label().LocationAt(geomIndex, Left)
	assertf(startLoc != location.None, "found unlabelled area edge")

	currLoc := startLoc
	for _, e := range s.ends {
		lbl := e.End().Label()
		assertf(lbl.IsGeomArea(geomIndex), "found non-area edge")
		leftLoc := lbl.LocationAt(geomIndex, Left)
		rightLoc := lbl.LocationAt(geomIndex, Right)
		if leftLoc == rightLoc || rightLoc != currLoc {
			return false
		}
		currLoc = leftLoc
	}
	return true
}

// PropagateSideLabels fills in unknown side locations of area edge ends for
// a geometry, using the fact that the location to the left of an edge end is
// the location to the right of the next edge end counter-clockwise. Line
// edge ends take the location of the sector that they lie in.
func (s *EdgeEndStar) PropagateSideLabels(geomIndex int) error {
	// Start from the left location of the last area edge with known sides.
	startLoc := location.None
	for _, e := range s.ends {
		lbl := e.End().Label()
		if lbl.IsGeomArea(geomIndex) && lbl.LocationAt(geomIndex, Left) != location.None {
			startLoc = lbl.LocationAt(geomIndex, Left)
		}
	}
	if startLoc == location.None {
		return nil
	}

	currLoc := startLoc
	for _, e := range s.ends {
		ee := e.End()
		lbl := ee.Label()
		if lbl.LocationAt(geomIndex, On) == location.None {
			lbl.SetLocationAt(geomIndex, On, currLoc)
		}
		if !lbl.IsGeomArea(geomIndex) {
			continue
		}
		leftLoc := lbl.LocationAt(geomIndex, Left)
		rightLoc := lbl.LocationAt(geomIndex, Right)
		if rightLoc != location.None {
			if rightLoc != currLoc {
				return newTopologyError(ee.Coordinate(), "side location conflict")
			}
			assertf(leftLoc != location.None, "found single null side (at %s)", formatCoord(ee.Coordinate()))
			currLoc = leftLoc
		} else {
			assertf(leftLoc == location.None, "found single null side")
			lbl.SetLocationAt(geomIndex, Right, currLoc)
			lbl.SetLocationAt(geomIndex, Left, currLoc)
		}
	}
	return nil
}

func (s *EdgeEndStar) String() string {
	var sb strings.Builder
	sb.WriteString("EdgeEndStar:   ")
	if c := s.Coordinate(); c != nil {
		sb.WriteString(formatCoord(c))
	}
	sb.WriteString("\n")
	for _, e := range s.ends {
		fmt.Fprintln(&sb, e)
	}
	return sb.String()
}
