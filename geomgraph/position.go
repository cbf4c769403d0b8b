package geomgraph

import (
	"fmt"

	"github.com/twpayne/go-geom/xy/location"
)

// Position is a location relative to a directed edge: on the edge itself, or
// on its left or right hand side.
type Position int

const (
	On Position = iota
	Left
	Right
)

// Opposite returns Right for Left and Left for Right. On is its own opposite.
func (p Position) Opposite() Position {
	switch p {
	case Left:
		return Right
	case Right:
		return Left
	}
	return p
}

func (p Position) String() string {
	switch p {
	case On:
		return "On"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// locationSymbol renders a location as one of 'i', 'b', 'e' or '-' (for
// undetermined locations).
func locationSymbol(loc location.Type) byte {
	switch loc {
	case location.Interior:
		return 'i'
	case location.Boundary:
		return 'b'
	case location.Exterior:
		return 'e'
	}
	return '-'
}
