package generate

import (
	"math"
	"math/rand"

	"github.com/twpayne/go-geom"
)

type PerlinGenerator struct {
	minX, minY float64
	gradients  [][][2]float64
	originX    int
	originY    int
}

// NewPerlinGenerator constructs a perlin generator, which can generate perlin
// noise within the given bounds.
func NewPerlinGenerator(bounds *geom.Bounds, rnd *rand.Rand) PerlinGenerator {
	minX, minY := math.Floor(bounds.Min(0))-1, math.Floor(bounds.Min(1))-1
	maxX, maxY := math.Ceil(bounds.Max(0))+1, math.Ceil(bounds.Max(1))+1

	gridw := int(maxX) - int(minX) + 1
	gridh := int(maxY) - int(minY) + 1

	// Create a grid of 2D unit vectors.
	gradients := make([][][2]float64, gridw)
	for i := range gradients {
		gradients[i] = make([][2]float64, gridh)
		for j := range gradients[i] {
			angle := rnd.Float64() * math.Pi * 2
			gradients[i][j] = [2]float64{math.Sin(angle), math.Cos(angle)}
		}
	}
	return PerlinGenerator{
		minX:      minX,
		minY:      minY,
		gradients: gradients,
		originX:   int(minX),
		originY:   int(minY),
	}
}

// Sample gives the noise value at pt, which must be within the bounds that
// the generator was constructed with.
func (p PerlinGenerator) Sample(pt geom.Coord) float64 {
	x0 := int(pt[0] - p.minX)
	x1 := x0 + 1
	y0 := int(pt[1] - p.minY)
	y1 := y0 + 1

	n0 := p.dotGridGradient(x0, y0, pt)
	n1 := p.dotGridGradient(x1, y0, pt)
	n2 := p.dotGridGradient(x0, y1, pt)
	n3 := p.dotGridGradient(x1, y1, pt)

	sx := pt[0] - float64(x0+p.originX)
	sy := pt[1] - float64(y0+p.originY)

	lerp := func(a, b, w float64) float64 {
		return (1-w)*a + w*b
	}
	return lerp(lerp(n0, n1, sx), lerp(n2, n3, sx), sy)
}

func (p PerlinGenerator) dotGridGradient(x, y int, pt geom.Coord) float64 {
	dx := pt[0] - float64(x+p.originX)
	dy := pt[1] - float64(y+p.originY)
	g := p.gradients[x][y]
	return dx*g[0] + dy*g[1]
}

// PerlinPolygon generates a regular polygon centred on the origin and then
// displaces each of its vertices by perlin noise scaled by amplitude. Large
// amplitudes give self intersecting rings.
func PerlinPolygon(rnd *rand.Rand, radius float64, sides int, amplitude float64) *geom.Polygon {
	ring := RegularPolygon(geom.Coord{0, 0}, radius, sides).LinearRing(0)
	bounds := ring.Bounds()
	perlinX := NewPerlinGenerator(bounds, rnd)
	perlinY := NewPerlinGenerator(bounds, rnd)

	coords := ring.Coords()
	out := make([]geom.Coord, len(coords))
	for i, c := range coords {
		out[i] = geom.Coord{
			c[0] + amplitude*perlinX.Sample(c),
			c[1] + amplitude*perlinY.Sample(c),
		}
	}
	// Keep the ring closed even if the first and last samples differ in
	// the last bit.
	out[len(out)-1] = out[0]
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{out})
}
