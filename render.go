package barchart

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawNode renders n and its descendants to dst in tree order. World
// transforms must be current (Scene.Draw runs updateWorld first).
//
// Rects are drawn as scaled WhitePixel sprites; labels through text/v2.
// There is no command sorting or batching — a chart is a few dozen nodes and
// insertion order is the intended paint order.
func drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}

	switch n.Type {
	case NodeTypeRect:
		drawRect(dst, n)
	case NodeTypeLabel:
		drawLabel(dst, n)
	}

	for _, child := range n.children {
		drawNode(dst, child)
	}
}

// drawRect fills the node's Width×Height rectangle with its color.
func drawRect(dst *ebiten.Image, n *Node) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	a := n.Color.A * n.worldAlpha
	if a <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width, n.Height)
	op.GeoM.Translate(n.worldX, n.worldY)
	// ColorScale is premultiplied: fold alpha into the color channels.
	op.ColorScale.Scale(
		float32(n.Color.R*a),
		float32(n.Color.G*a),
		float32(n.Color.B*a),
		float32(a),
	)
	dst.DrawImage(WhitePixel, op)
}

// drawLabel renders the node's text block. Only *TTFFont draws; other Font
// implementations are measure-only.
func drawLabel(dst *ebiten.Image, n *Node) {
	lb := n.Label
	if lb == nil || lb.Content == "" {
		return
	}
	f, ok := lb.Font.(*TTFFont)
	if !ok {
		return
	}
	a := lb.Color.A * n.worldAlpha
	if a <= 0 {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(n.worldX+lb.alignOffset(), n.worldY)
	op.ColorScale.Scale(
		float32(lb.Color.R*a),
		float32(lb.Color.G*a),
		float32(lb.Color.B*a),
		float32(a),
	)
	op.LineSpacing = f.lh
	text.Draw(dst, lb.Content, f.face, op)
}
