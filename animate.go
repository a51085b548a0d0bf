package barchart

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Smoothstep is a gween easing function implementing t²(3−2t): ease-in,
// ease-out, zero velocity at both ends. All bar height transitions use it.
func Smoothstep(t, b, c, d float32) float32 {
	var p float32
	if d > 0 {
		p = t / d
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return b + c*(p*p*(3-2*p))
}

var _ ease.TweenFunc = Smoothstep

// minTweenDuration keeps gween away from zero-length tweens; a disabled or
// zero-duration animation runs its clock to this instant instead.
const minTweenDuration = 1e-9

// animator holds bar height interpolation state: one tween per bar sharing a
// single elapsed-time clock. It holds no timer — Chart.Advance feeds it time
// deltas.
type animator struct {
	tweens   []*gween.Tween
	starts   []float64
	duration float64
	elapsed  float64
	done     bool
}

// captureStarts records the bars' current rendered heights as the next
// animation's starting points. Called before a rebuild disturbs the pool.
func (a *animator) captureStarts(bars []*Node) {
	a.starts = a.starts[:0]
	for _, bar := range bars {
		a.starts = append(a.starts, bar.Height)
	}
}

// rebuildTweens builds one tween per target from the captured starting
// heights. Indices beyond the captured range start at zero, so new bars grow
// up from the axis.
func (a *animator) rebuildTweens(targets []float64, duration float64) {
	if duration < minTweenDuration {
		duration = minTweenDuration
	}
	a.duration = duration
	a.tweens = a.tweens[:0]
	for i, target := range targets {
		var start float64
		if i < len(a.starts) {
			start = a.starts[i]
		}
		a.tweens = append(a.tweens,
			gween.New(float32(start), float32(target), float32(duration), Smoothstep))
	}
	if a.elapsed > a.duration {
		a.elapsed = a.duration
	}
}

// complete fast-forwards the clock so the next apply snaps to the targets.
func (a *animator) complete() {
	a.elapsed = a.duration
	a.done = true
}

// barTargets computes each bar's final pixel height. The ceiling comes from
// the same axisCeiling call the builder uses, so animator and builder never
// disagree on scale. Negative values clamp to zero height; bars never exceed
// the plot height.
func (c *Chart) barTargets() []float64 {
	targets := make([]float64, len(c.values))
	ceiling := axisCeiling(c.values, c.cfg)
	for i, v := range c.values {
		if v < 0 {
			v = 0
		}
		h := v / ceiling * c.areaH
		if h > c.areaH {
			h = c.areaH
		}
		targets[i] = h
	}
	return targets
}

// applyHeights writes the current clock's interpolated heights to the bars.
func (c *Chart) applyHeights() {
	for i, tw := range c.anim.tweens {
		if i >= c.bars.size() {
			break
		}
		v, _ := tw.Set(float32(c.anim.elapsed))
		c.setBarHeight(i, float64(v))
	}
}

// setBarHeight sets bar i's height, keeping it anchored to the axis.
func (c *Chart) setBarHeight(i int, h float64) {
	if h < 0 {
		h = 0
	}
	bar := c.bars.at(i)
	bar.Height = h
	bar.Y = c.areaH - h
}

// Advance steps the animation clock by dt seconds and applies the
// interpolated bar heights. Call once per frame from the host's update loop
// (Scene.SetUpdateFunc wires this); inert when no animation is in flight.
// The final frame snaps exactly to the targets.
func (c *Chart) Advance(dt float64) {
	if c.status == statusEmpty || c.anim.done {
		return
	}
	c.anim.elapsed += dt
	if c.anim.elapsed >= c.anim.duration {
		c.anim.elapsed = c.anim.duration
		c.anim.done = true
	}
	c.applyHeights()
}

// Animating reports whether a bar height animation is currently in flight.
func (c *Chart) Animating() bool {
	return c.status != statusEmpty && !c.anim.done
}
