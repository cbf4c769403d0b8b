package rtree

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Box is an axis aligned bounding box. Boxes are closed, so two boxes that
// only share an edge or a corner still overlap.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// SegmentBox returns the smallest Box containing the line segment between a
// and b. Only the X and Y ordinates of the coordinates are used.
func SegmentBox(a, b geom.Coord) Box {
	return Box{
		MinX: math.Min(a[0], b[0]),
		MinY: math.Min(a[1], b[1]),
		MaxX: math.Max(a[0], b[0]),
		MaxY: math.Max(a[1], b[1]),
	}
}

// CoordsBox returns the smallest Box containing all of the coordinates. The
// bool is false if there are no coordinates.
func CoordsBox(coords []geom.Coord) (Box, bool) {
	if len(coords) == 0 {
		return Box{}, false
	}
	box := Box{coords[0][0], coords[0][1], coords[0][0], coords[0][1]}
	for _, c := range coords[1:] {
		box = combine(box, Box{c[0], c[1], c[0], c[1]})
	}
	return box, true
}

// Overlaps checks if two boxes share at least one point.
func (b Box) Overlaps(o Box) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

func combine(a, b Box) Box {
	return Box{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

func area(b Box) float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// enlargement is the increase in area of existing when it's grown to also
// cover box.
func enlargement(box, existing Box) float64 {
	return area(combine(box, existing)) - area(existing)
}

func calculateBound(n *node) Box {
	box := n.entries[0].box
	for i := 1; i < n.numEntries; i++ {
		box = combine(box, n.entries[i].box)
	}
	return box
}
