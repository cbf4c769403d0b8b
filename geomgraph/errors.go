package geomgraph

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// TopologyError indicates that the graph is in an inconsistent state, which
// happens when the noding precondition (edges only meet at endpoints) has
// been violated. The graph should be discarded once one has been returned.
type TopologyError struct {
	Msg string
	Pt  geom.Coord
}

func (e *TopologyError) Error() string {
	if e.Pt == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s [ (%v, %v) ]", e.Msg, e.Pt[0], e.Pt[1])
}

func newTopologyError(pt geom.Coord, format string, args ...interface{}) error {
	return errors.WithStack(&TopologyError{
		Msg: fmt.Sprintf(format, args...),
		Pt:  copyCoord(pt),
	})
}

// IsTopologyError checks if the error (or any error that it wraps) is a
// TopologyError.
func IsTopologyError(err error) bool {
	var topoErr *TopologyError
	return errors.As(err, &topoErr)
}

func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
