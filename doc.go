// Package barchart is an animated, responsive bar chart widget for
// [Ebitengine].
//
// The chart is a retained-mode component: it owns a small scene graph of
// rectangles and text labels, lays them out from its current dataset and
// container size, and animates bar heights with a smoothstep tween whenever
// the data changes.
//
// # Quick start
//
// The simplest way to get a chart on screen is [Run], which creates a window
// and game loop for you:
//
//	font, _ := barchart.LoadTTFFont(goregular.TTF, 12)
//	chart := barchart.New(font, barchart.DefaultConfig())
//	chart.SetSize(640, 480)
//	chart.SetData([]float64{12, 30, 7, 22}, []string{"Q1", "Q2", "Q3", "Q4"})
//
//	scene := barchart.NewScene()
//	scene.Root().AddChild(chart.Root())
//	scene.OnResize = chart.SetSize
//	scene.SetUpdateFunc(chart.Advance)
//	barchart.Run(scene, barchart.RunConfig{
//		Title: "Sales", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call [Scene.Update]
// and [Scene.Draw] directly, forwarding the per-frame delta to
// [Chart.Advance].
//
// # Data and layout
//
// [Chart.SetData] replaces the dataset wholesale. Values map to bar heights,
// labels sit under the bars; a missing label defaults to the bar's 1-based
// index. The vertical axis ceiling is either the data maximum (auto mode) or
// a manual maximum set via [Chart.SetYAxisMax], optionally rounded up to a
// "nice" 1/2/5/10 multiple by [NiceCeiling].
//
// Axes, tick marks, grid lines, and labels are redrawn from scratch on every
// data or size change; bar and bar-label elements are pooled and reused.
//
// [Ebitengine]: https://ebitengine.org
package barchart
