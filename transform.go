package barchart

// Chart elements only ever translate, so the transform hierarchy reduces to
// accumulated offsets. World values are recomputed top-down each draw; the
// trees involved are a few dozen nodes.

// updateWorld recomputes worldX/worldY/worldAlpha for n and its descendants.
func updateWorld(n *Node, parentX, parentY, parentAlpha float64) {
	n.worldX = parentX + n.X
	n.worldY = parentY + n.Y
	n.worldAlpha = parentAlpha * n.Alpha
	for _, child := range n.children {
		updateWorld(child, n.worldX, n.worldY, n.worldAlpha)
	}
}

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// WorldPosition returns the node's world-space position as of the last draw
// traversal.
func (n *Node) WorldPosition() (x, y float64) {
	return n.worldX, n.worldY
}
