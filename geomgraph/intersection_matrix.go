package geomgraph

import (
	"strings"

	"github.com/twpayne/go-geom/xy/location"
)

// Dimension values held by an IntersectionMatrix. The non-negative values are
// the dimensions of points, curves and surfaces.
const (
	DimFalse    = -1
	DimPoint    = 0
	DimCurve    = 1
	DimSurface  = 2
	DimTrue     = -2
	DimDontCare = -3
)

// IntersectionMatrix is a DE-9IM matrix. Rows are indexed by the location in
// the first geometry, and columns by the location in the second geometry.
type IntersectionMatrix struct {
	m [3][3]int
}

// NewIntersectionMatrix creates a matrix with every entry set to DimFalse.
func NewIntersectionMatrix() *IntersectionMatrix {
	im := new(IntersectionMatrix)
	im.SetAll(DimFalse)
	return im
}

func (im *IntersectionMatrix) SetAll(dim int) {
	for i := range im.m {
		for j := range im.m[i] {
			im.m[i][j] = dim
		}
	}
}

func (im *IntersectionMatrix) Get(row, col location.Type) int {
	return im.m[row][col]
}

func (im *IntersectionMatrix) Set(row, col location.Type, dim int) {
	im.m[row][col] = dim
}

// SetAtLeast raises an entry to at least the given dimension.
func (im *IntersectionMatrix) SetAtLeast(row, col location.Type, minDim int) {
	if im.m[row][col] < minDim {
		im.m[row][col] = minDim
	}
}

// SetAtLeastIfValid is like SetAtLeast, but does nothing if either location
// is undetermined.
func (im *IntersectionMatrix) SetAtLeastIfValid(row, col location.Type, minDim int) {
	if row == location.None || col == location.None {
		return
	}
	im.SetAtLeast(row, col, minDim)
}

func dimSymbol(dim int) byte {
	switch dim {
	case DimFalse:
		return 'F'
	case DimTrue:
		return 'T'
	case DimDontCare:
		return '*'
	case DimPoint:
		return '0'
	case DimCurve:
		return '1'
	case DimSurface:
		return '2'
	}
	return '?'
}

// String renders the matrix in row major order, e.g. "212101212".
func (im *IntersectionMatrix) String() string {
	var sb strings.Builder
	for _, row := range [...]location.Type{location.Interior, location.Boundary, location.Exterior} {
		for _, col := range [...]location.Type{location.Interior, location.Boundary, location.Exterior} {
			sb.WriteByte(dimSymbol(im.m[row][col]))
		}
	}
	return sb.String()
}
