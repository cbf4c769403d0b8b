package geomgraph

import (
	"github.com/twpayne/go-geom/xy/location"
)

// Label records the topological relationship of a graph component with up to
// two geometries (indexed 0 and 1). For each geometry it holds the location
// on the component and, for area components, the locations on each side.
//
// Labels are merged in place as more becomes known about the component. A
// label is complete once it holds locations for both geometries. A component
// with a label for only one geometry is isolated from the other geometry.
type Label struct {
	elt [2]TopologyLocation
}

// NewLabel creates a line label with the same On location for both
// geometries.
func NewLabel(on location.Type) *Label {
	return &Label{elt: [2]TopologyLocation{
		newLineTopologyLocation(on),
		newLineTopologyLocation(on),
	}}
}

// NewGeomLabel creates a line label with an On location for a single
// geometry. The location for the other geometry is undetermined.
func NewGeomLabel(geomIndex int, on location.Type) *Label {
	lbl := NewLabel(location.None)
	lbl.elt[geomIndex].SetLocation(On, on)
	return lbl
}

// NewAreaLabel creates an area label with the same locations for both
// geometries.
func NewAreaLabel(on, left, right location.Type) *Label {
	return &Label{elt: [2]TopologyLocation{
		newAreaTopologyLocation(on, left, right),
		newAreaTopologyLocation(on, left, right),
	}}
}

// NewGeomAreaLabel creates an area label with locations for a single
// geometry. The locations for the other geometry are undetermined.
func NewGeomAreaLabel(geomIndex int, on, left, right location.Type) *Label {
	lbl := NewAreaLabel(location.None, location.None, location.None)
	lbl.elt[geomIndex].SetLocations(on, left, right)
	return lbl
}

// ToLineLabel converts a label to a line label, keeping only the On
// locations.
func ToLineLabel(lbl *Label) *Label {
	line := NewLabel(location.None)
	for i := 0; i < 2; i++ {
		line.SetLocation(i, lbl.Location(i))
	}
	return line
}

// Clone creates a deep copy of the label.
func (l *Label) Clone() *Label {
	return &Label{elt: [2]TopologyLocation{l.elt[0].clone(), l.elt[1].clone()}}
}

// Flip swaps the Left and Right locations for both geometries.
func (l *Label) Flip() {
	l.elt[0].Flip()
	l.elt[1].Flip()
}

// LocationAt gives the location for a geometry at a position.
func (l *Label) LocationAt(geomIndex int, pos Position) location.Type {
	return l.elt[geomIndex].Get(pos)
}

// Location gives the On location for a geometry.
func (l *Label) Location(geomIndex int) location.Type {
	return l.elt[geomIndex].Get(On)
}

func (l *Label) SetLocationAt(geomIndex int, pos Position, loc location.Type) {
	l.elt[geomIndex].SetLocation(pos, loc)
}

// SetLocation sets the On location for a geometry.
func (l *Label) SetLocation(geomIndex int, loc location.Type) {
	l.elt[geomIndex].SetLocation(On, loc)
}

func (l *Label) SetAllLocations(geomIndex int, loc location.Type) {
	l.elt[geomIndex].SetAllLocations(loc)
}

func (l *Label) SetAllLocationsIfNull(geomIndex int, loc location.Type) {
	l.elt[geomIndex].SetAllLocationsIfNull(loc)
}

// SetAllLocationsIfNullBoth sets every undetermined location of both
// geometries.
func (l *Label) SetAllLocationsIfNullBoth(loc location.Type) {
	l.SetAllLocationsIfNull(0, loc)
	l.SetAllLocationsIfNull(1, loc)
}

// Merge fills in the undetermined locations of the label from other. Known
// locations are never overwritten, so merging is monotone and idempotent.
func (l *Label) Merge(other *Label) {
	for i := 0; i < 2; i++ {
		if l.elt[i].locs == nil {
			l.elt[i] = other.elt[i].clone()
			continue
		}
		l.elt[i].Merge(other.elt[i])
	}
}

// GeometryCount is the number of geometries that the label holds at least
// one location for.
func (l *Label) GeometryCount() int {
	var count int
	for i := 0; i < 2; i++ {
		if !l.elt[i].IsNull() {
			count++
		}
	}
	return count
}

func (l *Label) IsNull(geomIndex int) bool    { return l.elt[geomIndex].IsNull() }
func (l *Label) IsAnyNull(geomIndex int) bool { return l.elt[geomIndex].IsAnyNull() }

// IsArea is true if the label has side locations for either geometry.
func (l *Label) IsArea() bool {
	return l.elt[0].IsArea() || l.elt[1].IsArea()
}

func (l *Label) IsGeomArea(geomIndex int) bool { return l.elt[geomIndex].IsArea() }
func (l *Label) IsLine(geomIndex int) bool     { return l.elt[geomIndex].IsLine() }

// IsEqualOnSide checks if both geometries' locations at a position match
// those of other.
func (l *Label) IsEqualOnSide(other *Label, pos Position) bool {
	return l.elt[0].IsEqualOnSide(other.elt[0], pos) &&
		l.elt[1].IsEqualOnSide(other.elt[1], pos)
}

func (l *Label) AllPositionsEqual(geomIndex int, loc location.Type) bool {
	return l.elt[geomIndex].AllPositionsEqual(loc)
}

// ToLine converts the locations for a geometry to a line location, keeping
// only the On location.
func (l *Label) ToLine(geomIndex int) {
	if l.elt[geomIndex].IsArea() {
		l.elt[geomIndex] = newLineTopologyLocation(l.elt[geomIndex].locs[On])
	}
}

func (l *Label) String() string {
	return "A:" + l.elt[0].String() + " B:" + l.elt[1].String()
}
