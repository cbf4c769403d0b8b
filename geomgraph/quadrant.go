package geomgraph

import "github.com/twpayne/go-geom"

// Quadrant is one of the four quadrants of the plane, numbered
// counter-clockwise starting from the north east.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

// QuadrantOf gives the quadrant of a non-zero direction vector. A zero
// ordinate counts as positive, so directions along an axis fall in NE, NW or
// SE.
func QuadrantOf(dx, dy float64) Quadrant {
	assertf(dx != 0 || dy != 0, "cannot compute the quadrant for point ( %v %v )", dx, dy)
	if dx >= 0 {
		if dy >= 0 {
			return NE
		}
		return SE
	}
	if dy >= 0 {
		return NW
	}
	return SW
}

// QuadrantOfSegment gives the quadrant of the direction from p0 to p1.
func QuadrantOfSegment(p0, p1 geom.Coord) Quadrant {
	return QuadrantOf(p1[0]-p0[0], p1[1]-p0[1])
}

// IsNorthern checks if the quadrant is above the X axis.
func (q Quadrant) IsNorthern() bool {
	return q == NE || q == NW
}

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "?"
}
