package geomgraph

import (
	"sort"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/location"
)

type nodeKey [2]float64

func keyOf(c geom.Coord) nodeKey {
	return nodeKey{c[0], c[1]}
}

// NodeMap holds the nodes of a graph, keyed by their 2D coordinate. Nodes
// are iterated in X then Y order.
type NodeMap struct {
	factory NodeFactory
	nodes   map[nodeKey]*Node
	sorted  []*Node
}

func NewNodeMap(factory NodeFactory) *NodeMap {
	return &NodeMap{
		factory: factory,
		nodes:   make(map[nodeKey]*Node),
	}
}

// AddNodeAt gives the node at coord, creating it if it doesn't exist yet.
func (m *NodeMap) AddNodeAt(coord geom.Coord) *Node {
	key := keyOf(coord)
	n, ok := m.nodes[key]
	if !ok {
		n = m.factory.CreateNode(copyCoord(coord))
		m.nodes[key] = n
		m.sorted = nil
	}
	return n
}

// AddNode adds a node to the map. If there is already a node at the same
// coordinate then the new node's label is merged into it and the existing
// node is returned.
func (m *NodeMap) AddNode(n *Node) *Node {
	key := keyOf(n.coord)
	existing, ok := m.nodes[key]
	if !ok {
		m.nodes[key] = n
		m.sorted = nil
		return n
	}
	existing.MergeLabel(n)
	return existing
}

// Add inserts an edge end into the star of the node at its origin.
func (m *NodeMap) Add(e Ender) {
	m.AddNodeAt(e.End().Coordinate()).Add(e)
}

// Find gives the node at coord, or nil if there isn't one.
func (m *NodeMap) Find(coord geom.Coord) *Node {
	return m.nodes[keyOf(coord)]
}

func (m *NodeMap) Len() int { return len(m.nodes) }

// Nodes gives the nodes ordered by coordinate.
func (m *NodeMap) Nodes() []*Node {
	if m.sorted == nil {
		m.sorted = make([]*Node, 0, len(m.nodes))
		for _, n := range m.nodes {
			m.sorted = append(m.sorted, n)
		}
		sort.Slice(m.sorted, func(i, j int) bool {
			return compareCoords(m.sorted[i].coord, m.sorted[j].coord) < 0
		})
	}
	return m.sorted
}

// BoundaryNodes gives the nodes that are on the boundary of a geometry.
func (m *NodeMap) BoundaryNodes(geomIndex int) []*Node {
	var bdy []*Node
	for _, n := range m.Nodes() {
		if n.label.Location(geomIndex) == location.Boundary {
			bdy = append(bdy, n)
		}
	}
	return bdy
}

func (m *NodeMap) String() string {
	var sb strings.Builder
	for _, n := range m.Nodes() {
		sb.WriteString(n.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
