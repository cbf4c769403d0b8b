package geomgraph

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/twpayne/go-geom"
)

// EdgeList is an ordered list of edges that can efficiently find an edge
// equal to a given edge (ignoring orientation).
type EdgeList struct {
	edges []*Edge
	index map[string]*Edge
}

func NewEdgeList() *EdgeList {
	return &EdgeList{index: make(map[string]*Edge)}
}

// Add appends an edge to the list.
func (l *EdgeList) Add(e *Edge) {
	l.edges = append(l.edges, e)
	key := orientedKey(e.pts)
	if _, ok := l.index[key]; !ok {
		l.index[key] = e
	}
}

func (l *EdgeList) AddAll(edges []*Edge) {
	for _, e := range edges {
		l.Add(e)
	}
}

func (l *EdgeList) Edges() []*Edge  { return l.edges }
func (l *EdgeList) Len() int        { return len(l.edges) }
func (l *EdgeList) Get(i int) *Edge { return l.edges[i] }

// FindEqualEdge returns the first edge added to the list that has the same
// points as e (in either direction), or nil if there is none.
func (l *EdgeList) FindEqualEdge(e *Edge) *Edge {
	return l.index[orientedKey(e.pts)]
}

// FindEdgeIndex gives the index of e in the list, or -1 if e isn't in the
// list.
func (l *EdgeList) FindEdgeIndex(e *Edge) int {
	for i, other := range l.edges {
		if other == e {
			return i
		}
	}
	return -1
}

func (l *EdgeList) String() string {
	var sb strings.Builder
	sb.WriteString("MULTILINESTRING ( ")
	for i, e := range l.edges {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(strings.TrimPrefix(formatLineString(e.pts), "LINESTRING "))
	}
	sb.WriteString(")")
	return sb.String()
}

// orientedKey gives a key for a sequence of points that is the same for
// the sequence and its reverse. The points are read in whichever direction
// makes the sequence lexicographically increasing.
func orientedKey(pts []geom.Coord) string {
	forward := isIncreasing(pts)
	buf := make([]byte, 0, 16*len(pts))
	for i := range pts {
		p := pts[i]
		if !forward {
			p = pts[len(pts)-1-i]
		}
		buf = appendOrdinate(buf, p[0])
		buf = appendOrdinate(buf, p[1])
	}
	return string(buf)
}

// appendOrdinate encodes x so that -0 and +0 give the same bytes, as they
// compare equal everywhere else.
func appendOrdinate(buf []byte, x float64) []byte {
	if x == 0 {
		x = 0
	}
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(x))
}

// isIncreasing checks if the points compare less in the forward direction
// than in the reverse direction. Palindromic sequences are increasing.
func isIncreasing(pts []geom.Coord) bool {
	for i := 0; i < len(pts)/2; i++ {
		if c := compareCoords(pts[i], pts[len(pts)-1-i]); c != 0 {
			return c < 0
		}
	}
	return true
}
