package geomgraph

import (
	"github.com/twpayne/go-geom/xy/location"
)

// TopologyLocation holds the locations of a graph component relative to a
// single geometry. Line and point components only have an On location,
// while area components also have Left and Right locations.
type TopologyLocation struct {
	locs []location.Type
}

func newLineTopologyLocation(on location.Type) TopologyLocation {
	return TopologyLocation{locs: []location.Type{on}}
}

func newAreaTopologyLocation(on, left, right location.Type) TopologyLocation {
	return TopologyLocation{locs: []location.Type{on, left, right}}
}

func (tl TopologyLocation) clone() TopologyLocation {
	return TopologyLocation{locs: append([]location.Type(nil), tl.locs...)}
}

// Get gives the location at a position, or None if the position isn't held.
func (tl TopologyLocation) Get(pos Position) location.Type {
	if int(pos) < len(tl.locs) {
		return tl.locs[pos]
	}
	return location.None
}

// IsNull is true when every location is undetermined.
func (tl TopologyLocation) IsNull() bool {
	for _, loc := range tl.locs {
		if loc != location.None {
			return false
		}
	}
	return true
}

// IsAnyNull is true when at least one location is undetermined.
func (tl TopologyLocation) IsAnyNull() bool {
	for _, loc := range tl.locs {
		if loc == location.None {
			return true
		}
	}
	return false
}

func (tl TopologyLocation) IsArea() bool { return len(tl.locs) > 1 }
func (tl TopologyLocation) IsLine() bool { return len(tl.locs) == 1 }

// IsEqualOnSide compares the location at one position with another
// TopologyLocation.
func (tl TopologyLocation) IsEqualOnSide(other TopologyLocation, pos Position) bool {
	return tl.Get(pos) == other.Get(pos)
}

// AllPositionsEqual checks if every held location is loc.
func (tl TopologyLocation) AllPositionsEqual(loc location.Type) bool {
	for _, l := range tl.locs {
		if l != loc {
			return false
		}
	}
	return true
}

// Flip swaps the Left and Right locations.
func (tl *TopologyLocation) Flip() {
	if len(tl.locs) <= 1 {
		return
	}
	tl.locs[Left], tl.locs[Right] = tl.locs[Right], tl.locs[Left]
}

func (tl *TopologyLocation) SetAllLocations(loc location.Type) {
	for i := range tl.locs {
		tl.locs[i] = loc
	}
}

func (tl *TopologyLocation) SetAllLocationsIfNull(loc location.Type) {
	for i := range tl.locs {
		if tl.locs[i] == location.None {
			tl.locs[i] = loc
		}
	}
}

func (tl *TopologyLocation) SetLocation(pos Position, loc location.Type) {
	tl.locs[pos] = loc
}

func (tl *TopologyLocation) SetLocations(on, left, right location.Type) {
	tl.locs[On] = on
	tl.locs[Left] = left
	tl.locs[Right] = right
}

// Merge fills in undetermined locations from other. If other is an area
// location and this is a line location, this is expanded to an area location
// first.
func (tl *TopologyLocation) Merge(other TopologyLocation) {
	if len(other.locs) > len(tl.locs) {
		expanded := []location.Type{location.None, location.None, location.None}
		expanded[On] = tl.locs[On]
		tl.locs = expanded
	}
	for i := range tl.locs {
		if tl.locs[i] == location.None && i < len(other.locs) {
			tl.locs[i] = other.locs[i]
		}
	}
}

// String renders the locations as symbols, ordered Left, On, Right.
func (tl TopologyLocation) String() string {
	buf := make([]byte, 0, 3)
	if tl.IsArea() {
		buf = append(buf, locationSymbol(tl.locs[Left]))
	}
	buf = append(buf, locationSymbol(tl.locs[On]))
	if tl.IsArea() {
		buf = append(buf, locationSymbol(tl.locs[Right]))
	}
	return string(buf)
}
