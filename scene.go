package barchart

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree the chart lives in.
// It is deliberately small: a root container, a clear color, an update hook,
// and a resize notification. All work runs on the host's render thread.
type Scene struct {
	root *Node

	// ClearColor fills the screen before the tree is drawn.
	ClearColor Color

	// OnResize, when set, is called with the new logical size whenever the
	// host window layout changes. Wire this to Chart.SetSize so the chart
	// follows its container.
	OnResize func(w, h float64)

	updateFunc func(dt float64)

	width, height float64
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:       NewContainer("root"),
		ClearColor: Color{A: 1},
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers a per-frame callback invoked from Update with the
// frame's delta time in seconds. Wire this to Chart.Advance to drive
// animation.
func (s *Scene) SetUpdateFunc(fn func(dt float64)) {
	s.updateFunc = fn
}

// Update advances per-frame work using the tick rate's fixed delta.
func (s *Scene) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	if s.updateFunc != nil {
		s.updateFunc(dt)
	}
}

// Draw clears the screen, refreshes world transforms, and renders the tree.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	updateWorld(s.root, 0, 0, 1.0)
	drawNode(screen, s.root)
}

// notifyResize records the new logical size and fires OnResize when it
// actually changed. Called from the game loop's Layout.
func (s *Scene) notifyResize(w, h float64) {
	if w == s.width && h == s.height {
		return
	}
	s.width = w
	s.height = h
	if s.OnResize != nil {
		s.OnResize(w, h)
	}
}
