package geomgraph

import "github.com/twpayne/go-geom/xy/location"

// BoundaryNodeRule decides whether a point that is the endpoint of
// boundaryCount linear components is on the boundary of the geometry.
type BoundaryNodeRule interface {
	IsInBoundary(boundaryCount int) bool
}

// Mod2BoundaryNodeRule puts a point in the boundary iff it is the endpoint of
// an odd number of components. This is the OGC Simple Features rule, and is
// the default.
type Mod2BoundaryNodeRule struct{}

func (Mod2BoundaryNodeRule) IsInBoundary(boundaryCount int) bool {
	return boundaryCount%2 == 1
}

// EndPointBoundaryNodeRule puts every endpoint in the boundary.
type EndPointBoundaryNodeRule struct{}

func (EndPointBoundaryNodeRule) IsInBoundary(boundaryCount int) bool {
	return boundaryCount > 0
}

// MultiValentEndPointBoundaryNodeRule puts endpoints shared by more than one
// component in the boundary.
type MultiValentEndPointBoundaryNodeRule struct{}

func (MultiValentEndPointBoundaryNodeRule) IsInBoundary(boundaryCount int) bool {
	return boundaryCount > 1
}

// MonoValentEndPointBoundaryNodeRule puts endpoints that aren't shared with
// any other component in the boundary.
type MonoValentEndPointBoundaryNodeRule struct{}

func (MonoValentEndPointBoundaryNodeRule) IsInBoundary(boundaryCount int) bool {
	return boundaryCount == 1
}

// DetermineBoundary gives the location of a point that is the endpoint of
// boundaryCount components.
func DetermineBoundary(rule BoundaryNodeRule, boundaryCount int) location.Type {
	if rule.IsInBoundary(boundaryCount) {
		return location.Boundary
	}
	return location.Interior
}
