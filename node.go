package barchart

// nodeIDCounter is a plain counter (no atomic — barchart is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element the chart is built from. A single flat
// struct is used for all node types to avoid interface dispatch on the hot
// path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local, relative to parent)
	X, Y float64

	// Visibility
	Alpha   float64
	Visible bool

	// Rect fields (NodeTypeRect)
	Width  float64
	Height float64
	Color  Color

	// Label fields (NodeTypeLabel)
	Label *LabelBlock

	// Computed (updated during the draw traversal)
	worldX     float64
	worldY     float64
	worldAlpha float64

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewRect creates a rect node that renders a solid Width×Height rectangle
// with its top-left corner at the node position.
func NewRect(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeRect}
	nodeDefaults(n)
	return n
}

// NewLabel creates a label node with the given content and font.
func NewLabel(name, content string, font Font) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeLabel,
		Label: &LabelBlock{
			Content: content,
			Font:    font,
			Color:   ColorWhite,
		},
	}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("barchart: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("barchart: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("barchart: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

// DisposeChildren disposes all children and empties the child list.
// The node itself stays live. Used to clear rebuilt overlay groups.
func (n *Node) DisposeChildren() {
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = n.children[:0]
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Label = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
