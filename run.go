package barchart

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Resizable allows the user to resize the window. Size changes are
	// forwarded to Scene.OnResize.
	Resizable bool
}

// game adapts a Scene to the ebiten.Game interface.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.notifyResize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run creates a window and drives the scene's update/draw loop until the
// window closes. For full control over the game loop, implement ebiten.Game
// yourself and call Scene.Update and Scene.Draw directly.
func Run(scene *Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{scene: scene})
}
