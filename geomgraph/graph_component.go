package geomgraph

// GraphComponent holds the state shared by edges and nodes: a label and the
// flags set while computing a result.
type GraphComponent struct {
	label        *Label
	inResult     bool
	covered      bool
	coveredIsSet bool
	visited      bool
}

func (c *GraphComponent) Label() *Label       { return c.label }
func (c *GraphComponent) SetLabel(lbl *Label) { c.label = lbl }
func (c *GraphComponent) IsInResult() bool    { return c.inResult }
func (c *GraphComponent) SetInResult(b bool)  { c.inResult = b }
func (c *GraphComponent) IsCovered() bool     { return c.covered }
func (c *GraphComponent) IsCoveredSet() bool  { return c.coveredIsSet }
func (c *GraphComponent) IsVisited() bool     { return c.visited }
func (c *GraphComponent) SetVisited(b bool)   { c.visited = b }

func (c *GraphComponent) SetCovered(b bool) {
	c.covered = b
	c.coveredIsSet = true
}

// Component is implemented by Edge and Node.
type Component interface {
	Label() *Label
	IsIsolated() bool
	ComputeIM(im *IntersectionMatrix)
}

// UpdateIM updates an intersection matrix with the contribution of a
// component. The component's label must be complete.
func UpdateIM(c Component, im *IntersectionMatrix) {
	assertf(c.Label().GeometryCount() >= 2, "found partial label")
	c.ComputeIM(im)
}
