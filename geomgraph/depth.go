package geomgraph

import (
	"fmt"

	"github.com/twpayne/go-geom/xy/location"
)

// nullDepth marks a depth that hasn't been assigned yet.
const nullDepth = -1

// Depth records the topological depth of the sides of an edge with respect
// to each of the two geometries. Depths are accumulated from the labels of
// coincident edges, so must be normalized before they can be compared.
type Depth struct {
	depth [2][3]int
}

// NewDepth creates a Depth with every side unassigned.
func NewDepth() *Depth {
	d := new(Depth)
	for i := range d.depth {
		for j := range d.depth[i] {
			d.depth[i][j] = nullDepth
		}
	}
	return d
}

// DepthAtLocation converts a location to a depth: 0 for the exterior, 1 for
// the interior, and null otherwise.
func DepthAtLocation(loc location.Type) int {
	switch loc {
	case location.Exterior:
		return 0
	case location.Interior:
		return 1
	}
	return nullDepth
}

func (d *Depth) Depth(geomIndex int, pos Position) int {
	return d.depth[geomIndex][pos]
}

func (d *Depth) SetDepth(geomIndex int, pos Position, depth int) {
	d.depth[geomIndex][pos] = depth
}

// Location converts a depth back into a location. Depths of zero or less
// are in the exterior.
func (d *Depth) Location(geomIndex int, pos Position) location.Type {
	if d.depth[geomIndex][pos] <= 0 {
		return location.Exterior
	}
	return location.Interior
}

// AddLocation increments a depth if loc is the interior.
func (d *Depth) AddLocation(geomIndex int, pos Position, loc location.Type) {
	if loc == location.Interior {
		d.depth[geomIndex][pos]++
	}
}

// IsNull is true if no side of either geometry has a depth.
func (d *Depth) IsNull() bool {
	for i := range d.depth {
		for j := range d.depth[i] {
			if d.depth[i][j] != nullDepth {
				return false
			}
		}
	}
	return true
}

// IsNullGeom is true if the geometry has no side depths.
func (d *Depth) IsNullGeom(geomIndex int) bool {
	return d.depth[geomIndex][Left] == nullDepth
}

func (d *Depth) IsNullAt(geomIndex int, pos Position) bool {
	return d.depth[geomIndex][pos] == nullDepth
}

// Add accumulates the side locations of a label. Unassigned sides are
// initialised from the location, and assigned sides are incremented for
// interior locations.
func (d *Depth) Add(lbl *Label) {
	for i := 0; i < 2; i++ {
		for _, pos := range [...]Position{Left, Right} {
			loc := lbl.LocationAt(i, pos)
			if loc != location.Exterior && loc != location.Interior {
				continue
			}
			if d.IsNullAt(i, pos) {
				d.depth[i][pos] = DepthAtLocation(loc)
			} else {
				d.depth[i][pos] += DepthAtLocation(loc)
			}
		}
	}
}

// Delta is the change in depth from the left side to the right side.
func (d *Depth) Delta(geomIndex int) int {
	return d.depth[geomIndex][Right] - d.depth[geomIndex][Left]
}

// Normalize reduces the side depths of each geometry relative to their
// minimum, and clamps them so that each is 0 or 1.
func (d *Depth) Normalize() {
	for i := range d.depth {
		if d.IsNullGeom(i) {
			continue
		}
		minDepth := d.depth[i][Left]
		if d.depth[i][Right] < minDepth {
			minDepth = d.depth[i][Right]
		}
		if minDepth < 0 {
			minDepth = 0
		}
		for _, pos := range [...]Position{Left, Right} {
			var v int
			if d.depth[i][pos] > minDepth {
				v = 1
			}
			d.depth[i][pos] = v
		}
	}
}

func (d *Depth) String() string {
	return fmt.Sprintf("A: %d,%d B: %d,%d",
		d.depth[0][Left], d.depth[0][Right],
		d.depth[1][Left], d.depth[1][Right],
	)
}
