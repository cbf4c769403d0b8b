package generate

import (
	"math/rand"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

func RandomXYOnGrid(rnd *rand.Rand, min, max int) geom.Coord {
	x := rnd.Intn(max-min) + min
	y := rnd.Intn(max-min) + min
	return geom.Coord{float64(x), float64(y)}
}

func RandomPoint(rnd *rand.Rand) *geom.Point {
	return geom.NewPoint(geom.XY).MustSetCoords(RandomXYOnGrid(rnd, 0, 10))
}

// RandomLine gives a single segment line string. Its endpoints may be equal.
func RandomLine(rnd *rand.Rand) *geom.LineString {
	return geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{
		RandomXYOnGrid(rnd, 0, 10),
		RandomXYOnGrid(rnd, 0, 10),
	})
}

// RandomLineString gives a random walk on the integer grid. It has at least 2
// points, but they may be repeated.
func RandomLineString(rnd *rand.Rand) *geom.LineString {
	last := geom.Coord{
		float64(rnd.Intn(100) - 50),
		float64(rnd.Intn(100) - 50),
	}
	coords := []geom.Coord{last}
	for len(coords) < 2 || rnd.Float64() >= 0.1 {
		last = geom.Coord{
			last[0] + float64(rnd.Intn(10)-5),
			last[1] + float64(rnd.Intn(10)-5),
		}
		coords = append(coords, last)
	}
	return geom.NewLineString(geom.XY).MustSetCoords(coords)
}

// RandomGridSegments gives n axis aligned segments with integer endpoints in
// [0, size). Intersections between such segments are always exactly
// representable.
func RandomGridSegments(rnd *rand.Rand, n, size int) *geom.MultiLineString {
	lines := make([][]geom.Coord, 0, n)
	for len(lines) < n {
		a := RandomXYOnGrid(rnd, 0, size)
		b := geom.Coord{a[0], a[1]}
		axis := rnd.Intn(2)
		b[axis] = float64(rnd.Intn(size))
		if b[axis] == a[axis] {
			continue
		}
		lines = append(lines, []geom.Coord{a, b})
	}
	return geom.NewMultiLineString(geom.XY).MustSetCoords(lines)
}

func mustWKT(g geom.T) string {
	s, err := wkt.Marshal(g)
	if err != nil {
		panic(err)
	}
	return s
}

func RandomPointWKT(rnd *rand.Rand) string      { return mustWKT(RandomPoint(rnd)) }
func RandomLineWKT(rnd *rand.Rand) string       { return mustWKT(RandomLine(rnd)) }
func RandomLineStringWKT(rnd *rand.Rand) string { return mustWKT(RandomLineString(rnd)) }
