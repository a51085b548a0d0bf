package barchart

import "strconv"

// chartStatus is the chart's lifecycle state. Rebuild entry checks it instead
// of a bare bool so resize notifications fired by the rebuild's own layout
// mutations cannot recurse.
type chartStatus uint8

const (
	statusEmpty      chartStatus = iota // no data ever set; nothing is drawn
	statusIdle                          // has data, not currently rebuilding
	statusRebuilding                    // rebuild in flight; nested triggers ignored
)

// Chart is an animated bar chart component. It owns a node subtree that the
// caller parents anywhere in a scene via Root, and is driven by three inputs:
// the mutation API (SetData and friends), container size changes (SetSize),
// and the per-frame Advance call.
//
// All methods must be called from the single UI thread.
type Chart struct {
	cfg     Config
	font    Font
	factory ElementFactory

	// Node tree: root → background + plot; plot → overlay + bars + labels.
	root       *Node
	background *Node
	plot       *Node
	overlay    *Node // axes, ticks, grid, tick labels; rebuilt every pass
	barRoot    *Node
	labelRoot  *Node

	bars    elementPool
	xLabels elementPool

	// Container size and derived plot area (set at rebuild).
	width, height float64
	areaW, areaH  float64

	values []float64
	labels []string

	status chartStatus
	anim   animator
}

// New creates a chart using font for tick and bar labels. A nil font is
// allowed; labels are then laid out with zero extent and skipped at render.
func New(font Font, cfg Config) *Chart {
	cfg.normalize()

	c := &Chart{
		cfg:        cfg,
		font:       font,
		root:       NewContainer("chart"),
		background: NewRect("chart-background"),
		plot:       NewContainer("plot"),
		overlay:    NewContainer("overlay"),
		barRoot:    NewContainer("bars"),
		labelRoot:  NewContainer("bar-labels"),
	}
	c.factory = nodeFactory{font: font}

	c.root.AddChild(c.background)
	c.root.AddChild(c.plot)
	c.plot.AddChild(c.overlay)
	c.plot.AddChild(c.barRoot)
	c.plot.AddChild(c.labelRoot)

	c.bars = elementPool{parent: c.barRoot, create: c.factory.CreateBar, destroy: c.factory.Destroy}
	c.xLabels = elementPool{parent: c.labelRoot, create: c.factory.CreateBarLabel, destroy: c.factory.Destroy}

	return c
}

// Root returns the chart's root node for embedding in a scene.
func (c *Chart) Root() *Node {
	return c.root
}

// Config returns the chart's effective (clamped) configuration.
func (c *Chart) Config() Config {
	return c.cfg
}

// HasData reports whether SetData has ever been called.
func (c *Chart) HasData() bool {
	return c.status != statusEmpty
}

// Len returns the number of values in the current dataset.
func (c *Chart) Len() int {
	return len(c.values)
}

// ValueAt returns the value at index i of the current dataset.
func (c *Chart) ValueAt(i int) float64 {
	return c.values[i]
}

// --- Mutation API ---

// SetData replaces the dataset and animates bars from their current heights
// to the new targets. A nil values slice is treated as empty. Labels pair
// with values positionally; missing labels default to the bar's 1-based
// index. When animation is disabled the bars snap to their targets.
func (c *Chart) SetData(values []float64, labels []string) {
	// Capture current rendered heights before the rebuild touches the pool.
	c.anim.captureStarts(c.bars.nodes)

	c.values = append(c.values[:0], values...)
	c.labels = append(c.labels[:0], labels...)
	if c.status == statusEmpty {
		c.status = statusIdle
	}

	c.rebuild()

	c.anim.rebuildTweens(c.barTargets(), c.cfg.AnimateDuration)
	if c.cfg.Animate && c.cfg.AnimateDuration > 0 {
		c.anim.elapsed = 0
		c.anim.done = false
	} else {
		c.anim.complete()
	}
	c.applyHeights()
}

// SetDataAutoLabels replaces the dataset with labels defaulting to the
// 1-based indices.
func (c *Chart) SetDataAutoLabels(values []float64) {
	c.SetData(values, nil)
}

// SetTheme applies the patch's non-nil colors and redraws. Data and
// animation state are untouched.
func (c *Chart) SetTheme(patch ThemePatch) {
	patch.apply(&c.cfg.Theme)
	c.refresh()
}

// SetYAxisMax sets the manual axis ceiling and whether auto-scaling from the
// data maximum is used instead, then redraws.
func (c *Chart) SetYAxisMax(max float64, auto bool) {
	c.cfg.YAxisMax = max
	c.cfg.AutoScale = auto
	c.refresh()
}

// SetConfig replaces the whole configuration and redraws.
func (c *Chart) SetConfig(cfg Config) {
	cfg.normalize()
	c.cfg = cfg
	c.refresh()
}

// SetSize notifies the chart of its container's size. Ignored while no data
// is set (nothing to lay out) and while a rebuild is in flight. An in-flight
// animation keeps its captured starting heights and is retargeted against
// the new geometry.
func (c *Chart) SetSize(w, h float64) {
	if w == c.width && h == c.height {
		return
	}
	c.width = w
	c.height = h
	c.refresh()
}

// SetElementFactory replaces the element source for pooled bars and labels.
// Existing pooled elements are destroyed by the old factory and recreated by
// the new one on the next rebuild.
func (c *Chart) SetElementFactory(f ElementFactory) {
	if f == nil {
		panic("barchart: nil ElementFactory")
	}
	c.bars.resize(0)
	c.xLabels.resize(0)
	c.factory = f
	c.bars.create = f.CreateBar
	c.bars.destroy = f.Destroy
	c.xLabels.create = f.CreateBarLabel
	c.xLabels.destroy = f.Destroy
	c.refresh()
}

// refresh rebuilds the scene and reapplies the current animation frame
// against the recomputed geometry, without restarting the animation clock.
func (c *Chart) refresh() {
	if c.status != statusIdle {
		return
	}
	c.rebuild()
	c.anim.rebuildTweens(c.barTargets(), c.cfg.AnimateDuration)
	c.applyHeights()
}

// labelFor returns the display label for bar i: the supplied label when
// present, the 1-based index otherwise.
func (c *Chart) labelFor(i int) string {
	if i < len(c.labels) {
		return c.labels[i]
	}
	return strconv.Itoa(i + 1)
}
