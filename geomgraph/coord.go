package geomgraph

import (
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// equals2D compares the X and Y ordinates of two coordinates exactly.
func equals2D(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// compareCoords orders coordinates by X and then by Y.
func compareCoords(a, b geom.Coord) int {
	switch {
	case a[0] < b[0]:
		return -1
	case a[0] > b[0]:
		return 1
	case a[1] < b[1]:
		return -1
	case a[1] > b[1]:
		return 1
	}
	return 0
}

func copyCoord(c geom.Coord) geom.Coord {
	if c == nil {
		return nil
	}
	return append(geom.Coord(nil), c...)
}

func copyCoords(cs []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(cs))
	for i, c := range cs {
		out[i] = copyCoord(c)
	}
	return out
}

// removeRepeatedPoints drops each coordinate that is equal in 2D to its
// predecessor.
func removeRepeatedPoints(cs []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, 0, len(cs))
	for _, c := range cs {
		if len(out) > 0 && equals2D(out[len(out)-1], c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// orientationIndex gives 1 if q is to the left of the directed line p1->p2,
// -1 if to the right, and 0 if the three points are collinear.
func orientationIndex(p1, p2, q geom.Coord) int {
	switch xy.OrientationIndex(p1, p2, q) {
	case orientation.CounterClockwise:
		return 1
	case orientation.Clockwise:
		return -1
	default:
		return 0
	}
}

// isCCW checks if a closed ring of coordinates is oriented counter-clockwise.
func isCCW(ring []geom.Coord) bool {
	flat := make([]float64, 0, 2*len(ring))
	for _, c := range ring {
		flat = append(flat, c[0], c[1])
	}
	return xy.IsRingCounterClockwise(geom.XY, flat)
}

func formatCoord(c geom.Coord) string {
	if len(c) > 2 {
		return fmt.Sprintf("%v %v %v", c[0], c[1], c[2])
	}
	return fmt.Sprintf("%v %v", c[0], c[1])
}

func formatLineString(cs []geom.Coord) string {
	var sb strings.Builder
	sb.WriteString("LINESTRING (")
	for i, c := range cs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatCoord(c))
	}
	sb.WriteString(")")
	return sb.String()
}
