package geomgraph

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/location"

	"github.com/peterstace/geomgraph/generate"
)

func buildAdjacentSquares(t *testing.T) ([2]*GeometryGraph, *EdgeList) {
	t.Helper()
	graphs, err := BuildPair(
		geomFromWKT(t, "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))"),
		geomFromWKT(t, "POLYGON ((1 0, 2 0, 2 1, 1 1, 1 0.5, 1 0))"),
		false,
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	return graphs, SplitPair(graphs, NewRobustLineIntersector(), true)
}

func TestSplitPairMergesSharedEdges(t *testing.T) {
	_, edges := buildAdjacentSquares(t)
	require.Equal(t, 5, edges.Len())

	for _, shared := range [][]geom.Coord{
		xys(1, 0, 1, 0.5),
		xys(1, 0.5, 1, 1),
	} {
		e := edges.FindEqualEdge(NewEdge(shared, nil))
		require.NotNil(t, e, "%v", shared)
		assert.Equal(t, "A:ibe B:ebi", e.Label().String())
		assert.False(t, e.Depth().IsNull())
	}

	bOnly := edges.FindEqualEdge(NewEdge(xys(1, 0, 2, 0, 2, 1, 1, 1), nil))
	require.NotNil(t, bOnly)
	assert.Equal(t, "A:--- B:ibe", bOnly.Label().String())
	assert.True(t, bOnly.Depth().IsNull())
}

func TestBuildTopology(t *testing.T) {
	graphs, edges := buildAdjacentSquares(t)
	pg, err := BuildTopology(graphs, edges)
	require.NoError(t, err)

	var nodes []geom.Coord
	for _, n := range pg.Nodes() {
		nodes = append(nodes, n.Coordinate())
		assert.Equal(t, 2, n.Label().GeometryCount(), "node %v", n)
	}
	want := xys(0, 0, 1, 0, 1, 0.5, 1, 1)
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, location.Exterior, pg.Find(geom.Coord{0, 0}).Label().Location(1))

	im := NewIntersectionMatrix()
	for _, e := range pg.EdgeEnds() {
		de := e.(*DirectedEdge)
		for gi := 0; gi < 2; gi++ {
			require.False(t, de.Label().IsAnyNull(gi), "%v", de)
		}
		updateEdgeIM(de.Label(), im)
	}
	assert.Equal(t, "FF2F11212", im.String())

	e := pg.FindEdge(geom.Coord{1, 0.5}, geom.Coord{1, 1})
	require.NotNil(t, e)
	assert.Equal(t, "A:ibe B:ebi", e.Label().String())
}

func TestBuildTopologyLocatesIsolatedNodes(t *testing.T) {
	for _, tt := range []struct {
		name string
		wkt0 string
		wkt1 string
		pt   geom.Coord
		want location.Type
	}{
		{"point on line interior", "LINESTRING (0 0, 10 0)", "POINT (5 0)", geom.Coord{5, 0}, location.Interior},
		{"point on line endpoint", "LINESTRING (0 0, 10 0)", "POINT (10 0)", geom.Coord{10, 0}, location.Boundary},
		{"point off line", "LINESTRING (0 0, 10 0)", "POINT (5 1)", geom.Coord{5, 1}, location.Exterior},
		{"matching points", "MULTIPOINT ((1 1), (2 2))", "POINT (2 2)", geom.Coord{2, 2}, location.Interior},
		{"point in polygon", "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))", "POINT (1 1)", geom.Coord{1, 1}, location.Interior},
	} {
		t.Run(tt.name, func(t *testing.T) {
			graphs, err := BuildPair(geomFromWKT(t, tt.wkt0), geomFromWKT(t, tt.wkt1), false, WithLogger(quietLogger()))
			require.NoError(t, err)
			pg, err := BuildTopology(graphs, SplitPair(graphs, NewRobustLineIntersector(), true))
			require.NoError(t, err)

			n := pg.Find(tt.pt)
			require.NotNil(t, n)
			assert.Equal(t, tt.want, n.Label().Location(0), "%v", n.Label())
			assert.Equal(t, location.Interior, n.Label().Location(1), "%v", n.Label())
		})
	}
}

func TestBuildPairRecoversPanics(t *testing.T) {
	var broken *geom.Point
	_, err := BuildPair(geomFromWKT(t, "POINT (1 2)"), broken, false, WithLogger(quietLogger()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "building graph 1")
}

func TestInsertUniqueEdgeAccumulatesDepth(t *testing.T) {
	edges := NewEdgeList()
	a := NewEdge(xys(0, 0, 1, 0), NewGeomAreaLabel(0, location.Boundary, location.Interior, location.Exterior))
	b := NewEdge(xys(1, 0, 0, 0), NewGeomAreaLabel(1, location.Boundary, location.Interior, location.Exterior))
	InsertUniqueEdge(edges, a)
	InsertUniqueEdge(edges, b)

	require.Equal(t, 1, edges.Len())
	assert.Equal(t, "A:ibe B:ebi", a.Label().String())
	assert.Equal(t, "A: 1,0 B: 0,1", a.Depth().String())
}

func TestCollapsedEdgeBecomesLine(t *testing.T) {
	// The same ring edge seen from both sides, as happens for a spike.
	edges := NewEdgeList()
	InsertUniqueEdge(edges, NewEdge(xys(0, 0, 1, 0), NewGeomAreaLabel(0, location.Boundary, location.Interior, location.Exterior)))
	InsertUniqueEdge(edges, NewEdge(xys(1, 0, 0, 0), NewGeomAreaLabel(0, location.Boundary, location.Interior, location.Exterior)))
	require.Equal(t, 1, edges.Len())

	ComputeLabelsFromDepths(edges)
	lbl := edges.Get(0).Label()
	assert.True(t, lbl.IsLine(0))
	assert.Equal(t, location.Boundary, lbl.Location(0))
}

func TestReplaceCollapsedEdges(t *testing.T) {
	edges := NewEdgeList()
	spike := NewEdge(xys(0, 0, 2, 2, 0, 0), NewGeomAreaLabel(0, location.Boundary, location.Interior, location.Exterior))
	line := lineEdge(5, 5, 6, 6)
	edges.AddAll([]*Edge{spike, line})

	out := ReplaceCollapsedEdges(edges)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, xys(0, 0, 2, 2), out.Get(0).Coordinates())
	assert.True(t, out.Get(0).Label().IsLine(0))
	assert.Same(t, line, out.Get(1))
	assert.Same(t, spike, edges.Get(0), "input is unchanged")
}

// intersectionSummary renders the intersections recorded in each edge of a
// graph, along with its nodes.
func intersectionSummary(gg *GeometryGraph) []string {
	var out []string
	for _, e := range gg.Edges() {
		out = append(out, e.EdgeIntersectionList().String())
	}
	return append(out, gg.NodeMap().String())
}

func TestEdgeSetIntersectorsAgree(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		g0 := generate.RandomGridSegments(rnd, 30, 10)
		g1 := generate.RandomGridSegments(rnd, 30, 10)

		var self, between [2][]string
		for i, esi := range []EdgeSetIntersector{SimpleEdgeSetIntersector{}, IndexedEdgeSetIntersector{}} {
			gg := NewGeometryGraph(0, g0, WithEdgeSetIntersector(esi), WithLogger(quietLogger()))
			gg.ComputeSelfNodes(NewRobustLineIntersector(), false, false)
			self[i] = intersectionSummary(gg)

			a := NewGeometryGraph(0, g0, WithEdgeSetIntersector(esi), WithLogger(quietLogger()))
			b := NewGeometryGraph(1, g1, WithEdgeSetIntersector(esi), WithLogger(quietLogger()))
			a.ComputeEdgeIntersections(b, NewRobustLineIntersector(), true)
			between[i] = append(intersectionSummary(a), intersectionSummary(b)...)
		}
		if diff := cmp.Diff(self[0], self[1]); diff != "" {
			t.Errorf("seed %d self intersections (-simple +indexed):\n%s", seed, diff)
		}
		if diff := cmp.Diff(between[0], between[1]); diff != "" {
			t.Errorf("seed %d intersections between (-simple +indexed):\n%s", seed, diff)
		}
	}
}
