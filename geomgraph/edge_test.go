package geomgraph

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/location"

	"github.com/peterstace/geomgraph/generate"
)

func reversed(cs []geom.Coord) []geom.Coord {
	out := copyCoords(cs)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func TestEdgeEqualIgnoresOrientation(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		ls := generate.RandomLineString(rnd)
		pts := ls.Coords()
		e := NewEdge(copyCoords(pts), NewLabel(location.Interior))
		rev := NewEdge(reversed(pts), NewLabel(location.Interior))

		assert.True(t, e.Equal(rev))
		assert.True(t, rev.Equal(e))
		assert.True(t, e.IsPointwiseEqual(NewEdge(copyCoords(pts), nil)))

		list := NewEdgeList()
		list.Add(e)
		assert.Same(t, e, list.FindEqualEdge(rev))
	}
}

func TestEdgeNotEqual(t *testing.T) {
	a := lineEdge(0, 0, 1, 1, 2, 0)
	b := lineEdge(0, 0, 1, 1, 2, 1)
	c := lineEdge(0, 0, 1, 1)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.IsPointwiseEqual(NewEdge(reversed(a.pts), nil)))

	list := NewEdgeList()
	list.AddAll([]*Edge{a, c})
	assert.Nil(t, list.FindEqualEdge(b))
	assert.Equal(t, 1, list.FindEdgeIndex(c))
	assert.Equal(t, -1, list.FindEdgeIndex(b))
}

func TestEdgeEqualSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	a := lineEdge(0, 0, 1, 1)
	b := NewEdge([]geom.Coord{{negZero, 0}, {1, 1}}, NewLabel(location.Interior))
	c := NewEdge([]geom.Coord{{1, 1}, {0, negZero}}, NewLabel(location.Interior))
	require.True(t, a.Equal(b))

	list := NewEdgeList()
	list.Add(a)
	assert.Same(t, a, list.FindEqualEdge(b))
	assert.Same(t, a, list.FindEqualEdge(c))

	InsertUniqueEdge(list, b)
	assert.Equal(t, 1, list.Len())
}

func TestEdgeIsClosedAndCollapsed(t *testing.T) {
	assert.True(t, lineEdge(0, 0, 1, 0, 1, 1, 0, 0).IsClosed())
	assert.False(t, lineEdge(0, 0, 1, 0).IsClosed())

	spike := NewEdge(xys(0, 0, 1, 1, 0, 0), NewGeomAreaLabel(0, location.Boundary, location.Interior, location.Exterior))
	require.True(t, spike.IsCollapsed())
	collapsed := spike.CollapsedEdge()
	assert.Equal(t, xys(0, 0, 1, 1), collapsed.Coordinates())
	assert.True(t, collapsed.Label().IsLine(0))
	assert.Equal(t, location.Boundary, collapsed.Label().Location(0))

	// Line edges don't collapse.
	assert.False(t, lineEdge(0, 0, 1, 1, 0, 0).IsCollapsed())
}

func TestEdgeEnvelope(t *testing.T) {
	env := lineEdge(3, -1, 0, 4, 2, 2).Envelope()
	assert.Equal(t, []float64{0, -1}, []float64{env.Min(0), env.Min(1)})
	assert.Equal(t, []float64{3, 4}, []float64{env.Max(0), env.Max(1)})
}

func TestAddIntersectionNormalizesVertex(t *testing.T) {
	e := lineEdge(0, 0, 2, 0, 2, 2)
	li := NewRobustLineIntersector()

	// Crosses the vertex at (2 0), which ends segment 0.
	li.ComputeIntersection(e.pts[0], e.pts[1], geom.Coord{1, -1}, geom.Coord{3, 1})
	require.Equal(t, 1, li.IntersectionNum())
	e.AddIntersections(li, 0, 0)

	// The same point reported from segment 1.
	li.ComputeIntersection(e.pts[1], e.pts[2], geom.Coord{1, -1}, geom.Coord{3, 1})
	require.Equal(t, 1, li.IntersectionNum())
	e.AddIntersections(li, 1, 0)

	eis := e.EdgeIntersectionList().Intersections()
	require.Len(t, eis, 1)
	assert.Equal(t, geom.Coord{2, 0}, eis[0].Coord)
	assert.Equal(t, 1, eis[0].SegmentIndex)
	assert.Zero(t, eis[0].Dist)
}

func TestEdgeIntersectionListIsSortedAndUnique(t *testing.T) {
	e := lineEdge(0, 0, 10, 0, 10, 10)
	l := e.EdgeIntersectionList()
	l.Add(geom.Coord{10, 5}, 1, 5)
	l.Add(geom.Coord{3, 0}, 0, 3)
	l.Add(geom.Coord{7, 0}, 0, 7)
	l.Add(geom.Coord{3, 0}, 0, 3)
	l.Add(geom.Coord{10, 2}, 1, 2)

	var got []geom.Coord
	for _, ei := range l.Intersections() {
		got = append(got, ei.Coord)
	}
	want := xys(3, 0, 7, 0, 10, 2, 10, 5)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, l.IsIntersection(geom.Coord{7, 0}))
	assert.False(t, l.IsIntersection(geom.Coord{5, 0}))
}

func TestEdgeIntersectionIsEndPoint(t *testing.T) {
	e := lineEdge(0, 0, 1, 0, 2, 0)
	l := e.EdgeIntersectionList()
	l.AddEndpoints()
	eis := l.Intersections()
	require.Len(t, eis, 2)
	assert.True(t, eis[0].IsEndPoint(e.MaximumSegmentIndex()))
	assert.True(t, eis[1].IsEndPoint(e.MaximumSegmentIndex()))

	mid := l.Add(geom.Coord{1, 0}, 1, 0)
	assert.False(t, mid.IsEndPoint(e.MaximumSegmentIndex()))
}

func TestAddSplitEdges(t *testing.T) {
	e := NewEdge(
		xys(0, 0, 4, 0, 4, 4, 0, 4),
		NewGeomAreaLabel(1, location.Boundary, location.Interior, location.Exterior),
	)
	l := e.EdgeIntersectionList()
	l.Add(geom.Coord{2, 0}, 0, 2)
	l.Add(geom.Coord{4, 4}, 2, 0)
	l.Add(geom.Coord{4, 1}, 1, 1)

	split := NewEdgeList()
	l.AddSplitEdges(split)

	var got [][]geom.Coord
	for _, se := range split.Edges() {
		got = append(got, se.Coordinates())
		assert.Equal(t, e.Label().String(), se.Label().String())
		assert.NotSame(t, e.Label(), se.Label())
	}
	want := [][]geom.Coord{
		xys(0, 0, 2, 0),
		xys(2, 0, 4, 0, 4, 1),
		xys(4, 1, 4, 4),
		xys(4, 4, 0, 4),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitEdgesDoNotAliasParent(t *testing.T) {
	e := lineEdge(0, 0, 1, 0, 2, 0)
	split := NewEdgeList()
	e.EdgeIntersectionList().AddSplitEdges(split)
	require.Equal(t, 1, split.Len())
	split.Get(0).Coordinate(1)[0] = 99
	assert.Equal(t, 1.0, e.Coordinate(1)[0])
}

func TestEdgeString(t *testing.T) {
	e := lineEdge(0, 0, 1, 2)
	e.SetName("a")
	assert.Equal(t, "edge a: LINESTRING (0 0, 1 2)  A:i B:i 0", e.String())
	assert.Equal(t, "edge a: LINESTRING (1 2, 0 0)  A:i B:i 0", e.ReverseString())
}
