package geomgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom/xy/location"
)

func allAreaLabels() []*Label {
	var lbls []*Label
	for _, on := range allLocations {
		for _, left := range allLocations {
			for _, right := range allLocations {
				lbls = append(lbls, NewGeomAreaLabel(0, on, left, right))
			}
		}
	}
	return lbls
}

func TestLabelMergeIsMonotoneAndIdempotent(t *testing.T) {
	for _, a := range allAreaLabels() {
		for _, b := range allAreaLabels() {
			merged := a.Clone()
			merged.Merge(b)
			for _, pos := range []Position{On, Left, Right} {
				before := a.LocationAt(0, pos)
				after := merged.LocationAt(0, pos)
				if before != location.None {
					assert.Equal(t, before, after, "merge %v into %v overwrote %v", b, a, pos)
				} else {
					assert.Equal(t, b.LocationAt(0, pos), after, "merge %v into %v at %v", b, a, pos)
				}
			}

			again := merged.Clone()
			again.Merge(b)
			assert.Equal(t, merged.String(), again.String())
		}
	}
}

func TestLabelMergeExpandsLineToArea(t *testing.T) {
	lbl := NewGeomLabel(0, location.Boundary)
	lbl.Merge(NewGeomAreaLabel(0, location.Interior, location.Interior, location.Exterior))
	require.True(t, lbl.IsGeomArea(0))
	assert.Equal(t, location.Boundary, lbl.LocationAt(0, On))
	assert.Equal(t, location.Interior, lbl.LocationAt(0, Left))
	assert.Equal(t, location.Exterior, lbl.LocationAt(0, Right))
}

func TestLabelMergeDoesNotAlias(t *testing.T) {
	lbl := NewLabel(location.None)
	other := NewGeomAreaLabel(1, location.Boundary, location.Interior, location.Exterior)
	lbl.Merge(other)
	other.SetLocationAt(1, Left, location.Exterior)
	assert.Equal(t, location.Interior, lbl.LocationAt(1, Left))
}

func TestLabelFlip(t *testing.T) {
	lbl := NewAreaLabel(location.Boundary, location.Interior, location.Exterior)
	lbl.Flip()
	for gi := 0; gi < 2; gi++ {
		assert.Equal(t, location.Boundary, lbl.LocationAt(gi, On))
		assert.Equal(t, location.Exterior, lbl.LocationAt(gi, Left))
		assert.Equal(t, location.Interior, lbl.LocationAt(gi, Right))
	}

	line := NewLabel(location.Interior)
	line.Flip()
	assert.Equal(t, "A:i B:i", line.String())
}

func TestToLineLabel(t *testing.T) {
	lbl := NewGeomAreaLabel(1, location.Boundary, location.Interior, location.Exterior)
	line := ToLineLabel(lbl)
	assert.True(t, line.IsLine(0))
	assert.True(t, line.IsLine(1))
	assert.Equal(t, location.None, line.Location(0))
	assert.Equal(t, location.Boundary, line.Location(1))
	assert.Equal(t, location.None, line.LocationAt(1, Left))
}

func TestLabelToLine(t *testing.T) {
	lbl := NewAreaLabel(location.Boundary, location.Interior, location.Exterior)
	lbl.ToLine(1)
	assert.True(t, lbl.IsGeomArea(0))
	assert.True(t, lbl.IsLine(1))
	assert.Equal(t, "A:ibe B:b", lbl.String())
}

func TestLabelString(t *testing.T) {
	for _, tt := range []struct {
		lbl  *Label
		want string
	}{
		{NewLabel(location.None), "A:- B:-"},
		{NewGeomLabel(1, location.Interior), "A:- B:i"},
		{NewGeomAreaLabel(0, location.Boundary, location.Interior, location.Exterior), "A:ibe B:---"},
		{NewAreaLabel(location.Exterior, location.Exterior, location.Exterior), "A:eee B:eee"},
	} {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lbl.String())
		})
	}
}

func TestLabelGeometryCount(t *testing.T) {
	assert.Equal(t, 0, NewLabel(location.None).GeometryCount())
	assert.Equal(t, 1, NewGeomLabel(0, location.Boundary).GeometryCount())
	assert.Equal(t, 2, NewLabel(location.Interior).GeometryCount())

	lbl := NewGeomAreaLabel(1, location.None, location.Interior, location.None)
	assert.Equal(t, 1, lbl.GeometryCount())
	assert.False(t, lbl.IsNull(1))
	assert.True(t, lbl.IsAnyNull(1))
}

func TestLabelSetAllLocationsIfNull(t *testing.T) {
	lbl := NewGeomAreaLabel(0, location.Boundary, location.None, location.Interior)
	lbl.SetAllLocationsIfNullBoth(location.Exterior)
	assert.Equal(t, "A:ebi B:eee", lbl.String())
}

func TestLabelIsEqualOnSide(t *testing.T) {
	a := NewAreaLabel(location.Boundary, location.Interior, location.Exterior)
	b := NewAreaLabel(location.Boundary, location.Interior, location.Interior)
	assert.True(t, a.IsEqualOnSide(b, Left))
	assert.False(t, a.IsEqualOnSide(b, Right))
}

func TestPositionOpposite(t *testing.T) {
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, On, On.Opposite())
}
