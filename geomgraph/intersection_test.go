package geomgraph

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/location"
)

func TestRobustLineIntersector(t *testing.T) {
	for _, tt := range []struct {
		name   string
		segs   []geom.Coord
		want   []geom.Coord
		proper bool
	}{
		{"crossing", xys(0, 0, 2, 2, 0, 2, 2, 0), xys(1, 1), true},
		{"touching", xys(0, 0, 1, 1, 1, 1, 2, 0), xys(1, 1), false},
		{"t junction", xys(0, 0, 2, 0, 1, 0, 1, 5), xys(1, 0), false},
		{"collinear", xys(0, 0, 4, 0, 2, 0, 6, 0), xys(2, 0, 4, 0), false},
		{"disjoint", xys(0, 0, 1, 0, 0, 1, 1, 1), nil, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			li := NewRobustLineIntersector()
			li.ComputeIntersection(tt.segs[0], tt.segs[1], tt.segs[2], tt.segs[3])
			assert.Equal(t, len(tt.want) > 0, li.HasIntersection())
			require.Equal(t, len(tt.want), li.IntersectionNum())
			var got []geom.Coord
			for i := 0; i < li.IntersectionNum(); i++ {
				got = append(got, li.Intersection(i))
			}
			assert.ElementsMatch(t, tt.want, got)
			for _, pt := range tt.want {
				assert.True(t, li.IsIntersection(pt))
			}
			assert.Equal(t, tt.proper, li.IsProper())
		})
	}
}

func TestEdgeDistance(t *testing.T) {
	assert.Equal(t, 0.0, edgeDistance(geom.Coord{0, 0}, geom.Coord{0, 0}, geom.Coord{4, 0}))
	assert.Equal(t, 2.0, edgeDistance(geom.Coord{2, 0}, geom.Coord{0, 0}, geom.Coord{4, 0}))
	assert.Equal(t, 4.0, edgeDistance(geom.Coord{4, 0}, geom.Coord{0, 0}, geom.Coord{4, 0}))
	assert.Equal(t, 1.0, edgeDistance(geom.Coord{2.0 / 3, 1}, geom.Coord{0, 0}, geom.Coord{2, 3}))

	li := NewRobustLineIntersector()
	li.ComputeIntersection(geom.Coord{0, 0}, geom.Coord{4, 0}, geom.Coord{1, -1}, geom.Coord{1, 1})
	assert.Equal(t, 1.0, li.EdgeDistance(0, 0))
	assert.Equal(t, 1.0, li.EdgeDistance(1, 0))
}

func TestSegmentIntersectorTrivialIntersections(t *testing.T) {
	square := lineEdge(0, 0, 1, 0, 1, 1, 0, 1, 0, 0)
	si := NewSegmentIntersector(NewRobustLineIntersector(), true, false)

	si.AddIntersections(square, 0, square, 0)
	assert.Zero(t, si.NumTests(), "a segment isn't tested against itself")

	si.AddIntersections(square, 0, square, 1)
	si.AddIntersections(square, 3, square, 0)
	si.AddIntersections(square, 0, square, 2)
	assert.Equal(t, 3, si.NumTests())
	assert.Equal(t, 2, si.NumIntersections())
	assert.False(t, si.HasIntersection())
	assert.Zero(t, square.EdgeIntersectionList().Len())
}

func TestSegmentIntersectorExcludesProper(t *testing.T) {
	e0 := lineEdge(0, 0, 2, 2)
	e1 := lineEdge(0, 2, 2, 0)
	si := NewSegmentIntersector(NewRobustLineIntersector(), false, true)
	si.AddIntersections(e0, 0, e1, 0)

	assert.True(t, si.HasIntersection())
	assert.True(t, si.HasProperIntersection())
	assert.True(t, si.HasProperInteriorIntersection())
	assert.Equal(t, geom.Coord{1, 1}, si.ProperIntersectionPoint())
	assert.Zero(t, e0.EdgeIntersectionList().Len())
	assert.False(t, e0.IsIsolated())
	assert.False(t, e1.IsIsolated())
}

func TestSegmentIntersectorBoundaryNodes(t *testing.T) {
	e0 := lineEdge(0, 0, 2, 2)
	e1 := lineEdge(0, 2, 2, 0)
	si := NewSegmentIntersector(NewRobustLineIntersector(), true, false)
	si.SetBoundaryNodes(nil, []*Node{NewNode(geom.Coord{1, 1}, nil)})
	si.SetIsDoneIfProperInt(true)
	si.AddIntersections(e0, 0, e1, 0)

	assert.True(t, si.HasProperIntersection())
	assert.False(t, si.HasProperInteriorIntersection())
	assert.True(t, si.IsDone())
	assert.Equal(t, 1, e0.EdgeIntersectionList().Len())
	assert.Equal(t, 1, e1.EdgeIntersectionList().Len())
}

func TestLocatePointInArea(t *testing.T) {
	const holed = "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 2 8, 8 8, 8 2, 2 2))"
	for _, tt := range []struct {
		wkt  string
		pt   geom.Coord
		want location.Type
	}{
		{holed, geom.Coord{1, 1}, location.Interior},
		{holed, geom.Coord{5, 5}, location.Exterior},
		{holed, geom.Coord{2, 5}, location.Boundary},
		{holed, geom.Coord{10, 5}, location.Boundary},
		{holed, geom.Coord{11, 5}, location.Exterior},
		{"MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((5 5, 8 5, 8 8, 5 8, 5 5)))", geom.Coord{6, 6}, location.Interior},
		{"GEOMETRYCOLLECTION (LINESTRING (0 0, 9 9), POLYGON ((5 5, 8 5, 8 8, 5 8, 5 5)))", geom.Coord{6, 6}, location.Interior},
		{"GEOMETRYCOLLECTION (LINESTRING (0 0, 9 9), POLYGON ((5 5, 8 5, 8 8, 5 8, 5 5)))", geom.Coord{1, 1}, location.Exterior},
		{"LINESTRING (0 0, 9 9)", geom.Coord{1, 1}, location.Exterior},
		{"POLYGON EMPTY", geom.Coord{1, 1}, location.Exterior},
	} {
		t.Run(tt.wkt, func(t *testing.T) {
			assert.Equal(t, tt.want, locatePointInArea(tt.pt, geomFromWKT(t, tt.wkt)))
		})
	}
}

func TestLocatePoint(t *testing.T) {
	for _, tt := range []struct {
		wkt  string
		pt   geom.Coord
		rule BoundaryNodeRule
		want location.Type
	}{
		{"POINT (1 1)", geom.Coord{1, 1}, Mod2BoundaryNodeRule{}, location.Interior},
		{"POINT (1 1)", geom.Coord{1, 2}, Mod2BoundaryNodeRule{}, location.Exterior},
		{"LINESTRING (0 0, 4 0, 4 4)", geom.Coord{2, 0}, Mod2BoundaryNodeRule{}, location.Interior},
		{"LINESTRING (0 0, 4 0, 4 4)", geom.Coord{4, 0}, Mod2BoundaryNodeRule{}, location.Interior},
		{"LINESTRING (0 0, 4 0, 4 4)", geom.Coord{4, 4}, Mod2BoundaryNodeRule{}, location.Boundary},
		{"LINESTRING (0 0, 4 0, 4 4)", geom.Coord{2, 1}, Mod2BoundaryNodeRule{}, location.Exterior},
		{"LINESTRING (0 0, 4 0, 4 4, 0 0)", geom.Coord{0, 0}, Mod2BoundaryNodeRule{}, location.Interior},
		{"MULTILINESTRING ((0 0, 1 0), (1 0, 2 0))", geom.Coord{1, 0}, Mod2BoundaryNodeRule{}, location.Interior},
		{"MULTILINESTRING ((0 0, 1 0), (1 0, 2 0))", geom.Coord{1, 0}, EndPointBoundaryNodeRule{}, location.Boundary},
		{"MULTILINESTRING ((0 0, 1 0), (1 0, 2 0))", geom.Coord{0, 0}, MultiValentEndPointBoundaryNodeRule{}, location.Interior},
		{"POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))", geom.Coord{4, 2}, Mod2BoundaryNodeRule{}, location.Boundary},
		{"POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))", geom.Coord{2, 2}, Mod2BoundaryNodeRule{}, location.Interior},
		{"GEOMETRYCOLLECTION (POINT (9 9), LINESTRING (0 0, 2 0))", geom.Coord{9, 9}, Mod2BoundaryNodeRule{}, location.Interior},
		{"GEOMETRYCOLLECTION (POINT (9 9), LINESTRING (0 0, 2 0))", geom.Coord{2, 0}, Mod2BoundaryNodeRule{}, location.Boundary},
		{"LINESTRING EMPTY", geom.Coord{0, 0}, Mod2BoundaryNodeRule{}, location.Exterior},
	} {
		t.Run(tt.wkt, func(t *testing.T) {
			assert.Equal(t, tt.want, locatePoint(tt.pt, geomFromWKT(t, tt.wkt), tt.rule), "%v", tt.pt)
		})
	}
}

func TestDetermineBoundary(t *testing.T) {
	rules := []BoundaryNodeRule{
		Mod2BoundaryNodeRule{},
		EndPointBoundaryNodeRule{},
		MultiValentEndPointBoundaryNodeRule{},
		MonoValentEndPointBoundaryNodeRule{},
	}
	// Indexed by rule, then by boundary count.
	want := [][]location.Type{
		{location.Interior, location.Boundary, location.Interior, location.Boundary},
		{location.Interior, location.Boundary, location.Boundary, location.Boundary},
		{location.Interior, location.Interior, location.Boundary, location.Boundary},
		{location.Interior, location.Boundary, location.Interior, location.Interior},
	}
	for i, rule := range rules {
		for count := 0; count < 4; count++ {
			assert.Equal(t, want[i][count], DetermineBoundary(rule, count), "%T %d", rule, count)
		}
	}
}

func TestIntersectionMatrix(t *testing.T) {
	im := NewIntersectionMatrix()
	assert.Equal(t, "FFFFFFFFF", im.String())

	im.SetAtLeast(location.Interior, location.Interior, DimCurve)
	im.SetAtLeast(location.Interior, location.Interior, DimPoint)
	im.SetAtLeastIfValid(location.None, location.Interior, DimSurface)
	im.Set(location.Boundary, location.Exterior, DimTrue)
	im.Set(location.Exterior, location.Boundary, DimDontCare)
	assert.Equal(t, DimCurve, im.Get(location.Interior, location.Interior))
	assert.Equal(t, "1FFFFTF*F", im.String())

	im.SetAll(DimSurface)
	assert.Equal(t, "222222222", im.String())
}

func TestUpdateIMRequiresCompleteLabel(t *testing.T) {
	im := NewIntersectionMatrix()
	assert.Panics(t, func() { UpdateIM(NewEdge(xys(0, 0, 1, 0), NewGeomLabel(0, location.Interior)), im) })

	e := NewEdge(xys(0, 0, 1, 0), NewAreaLabel(location.Boundary, location.Interior, location.Exterior))
	e.Label().SetAllLocations(1, location.Exterior)
	UpdateIM(e, im)
	assert.Equal(t, "FF2FF1FF2", im.String())
}

func TestTopologyError(t *testing.T) {
	err := newTopologyError(geom.Coord{1, 2}, "side location conflict for arg %d", 0)
	assert.Equal(t, "side location conflict for arg 0 [ (1, 2) ]", err.Error())
	assert.True(t, IsTopologyError(err))
	assert.True(t, IsTopologyError(errors.Wrap(err, "building topology")))
	assert.False(t, IsTopologyError(errors.New("side location conflict")))

	assert.Equal(t, "no point", (&TopologyError{Msg: "no point"}).Error())
}

func TestAssertf(t *testing.T) {
	assert.NotPanics(t, func() { assertf(true, "unreachable") })
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.IsAssertionFailure(err))
	}()
	assertf(false, "bad %s", "state")
}
