package generate

import (
	"math"

	"github.com/twpayne/go-geom"
)

// RegularPolygon computes a regular polygon circumscribed by a circle with the
// given center and radius. Sides must be at least 3 or it will panic. The
// ring is counter-clockwise, starting from the top of the circle.
func RegularPolygon(center geom.Coord, radius float64, sides int) *geom.Polygon {
	if sides <= 2 {
		panic(sides)
	}
	coords := make([]geom.Coord, sides+1)
	for i := 0; i < sides; i++ {
		angle := math.Pi/2 + float64(i)/float64(sides)*2*math.Pi
		coords[i] = geom.Coord{
			center[0] + math.Cos(angle)*radius,
			center[1] + math.Sin(angle)*radius,
		}
	}
	coords[sides] = coords[0]
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{coords})
}
