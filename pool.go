package barchart

import "strconv"

// ElementFactory creates and destroys the visual elements the chart pools.
// The default implementation builds plain scene nodes; supply your own via
// Chart.SetElementFactory to back the chart with a different element source.
type ElementFactory interface {
	CreateBar(parent *Node, index int) *Node
	CreateBarLabel(parent *Node, index int) *Node
	Destroy(n *Node)
}

// nodeFactory is the default ElementFactory.
type nodeFactory struct {
	font Font
}

func (f nodeFactory) CreateBar(parent *Node, index int) *Node {
	bar := NewRect("bar-" + strconv.Itoa(index))
	parent.AddChild(bar)
	return bar
}

func (f nodeFactory) CreateBarLabel(parent *Node, index int) *Node {
	label := NewLabel("bar-label-"+strconv.Itoa(index), "", f.font)
	label.Label.Align = TextAlignCenter
	parent.AddChild(label)
	return label
}

func (nodeFactory) Destroy(n *Node) {
	n.Dispose()
}

// elementPool keeps a set of reusable elements sized to the current data
// count. Elements at indices below min(old, new) survive a resize untouched;
// growth appends, shrinkage destroys from the tail backward.
type elementPool struct {
	parent  *Node
	create  func(parent *Node, index int) *Node
	destroy func(n *Node)
	nodes   []*Node
}

// resize grows or shrinks the pool to exactly n live elements.
func (p *elementPool) resize(n int) {
	for len(p.nodes) < n {
		p.nodes = append(p.nodes, p.create(p.parent, len(p.nodes)))
	}
	for i := len(p.nodes) - 1; i >= n; i-- {
		p.destroy(p.nodes[i])
		p.nodes[i] = nil
	}
	p.nodes = p.nodes[:n]
}

// size returns the number of live elements.
func (p *elementPool) size() int {
	return len(p.nodes)
}

// at returns the element at index i.
func (p *elementPool) at(i int) *Node {
	return p.nodes[i]
}
