package geomgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"github.com/twpayne/go-geom/xy/location"
)

func geomFromWKT(t testing.TB, s string) geom.T {
	t.Helper()
	g, err := wkt.Unmarshal(s)
	require.NoError(t, err, "wkt: %s", s)
	return g
}

// xys converts a flat list of ordinates into XY coordinates.
func xys(flat ...float64) []geom.Coord {
	cs := make([]geom.Coord, len(flat)/2)
	for i := range cs {
		cs[i] = geom.Coord{flat[2*i], flat[2*i+1]}
	}
	return cs
}

func lineEdge(flat ...float64) *Edge {
	return NewEdge(xys(flat...), NewLabel(location.Interior))
}

var allLocations = []location.Type{
	location.None,
	location.Interior,
	location.Boundary,
	location.Exterior,
}
