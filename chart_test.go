package barchart

import (
	"testing"
)

// stubFont measures with fixed per-rune advance so layout tests don't depend
// on a rasterizer.
type stubFont struct {
	advance float64
	height  float64
}

func (f stubFont) MeasureString(s string) (width, height float64) {
	return float64(len(s)) * f.advance, f.height
}

func (f stubFont) LineHeight() float64 {
	return f.height
}

// newTestChart builds a chart with round-number geometry: container 120×120,
// plot area 90×100.
func newTestChart() *Chart {
	cfg := DefaultConfig()
	cfg.PaddingLeft = 20
	cfg.PaddingBottom = 10
	cfg.PaddingRight = 10
	cfg.PaddingTop = 10
	cfg.BarSpacing = 5
	cfg.AnimateDuration = 0.25

	c := New(stubFont{advance: 6, height: 10}, cfg)
	c.SetSize(120, 120)
	return c
}

// finishAnimation advances well past the configured duration.
func finishAnimation(c *Chart) {
	c.Advance(c.cfg.AnimateDuration + 1)
}

func TestSetDataPoolSizeTracksDataCount(t *testing.T) {
	c := newTestChart()

	for _, n := range []int{4, 2, 6, 0, 3} {
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(i + 1)
		}
		c.SetDataAutoLabels(values)

		if c.bars.size() != n {
			t.Errorf("after SetData with %d values: bar pool = %d", n, c.bars.size())
		}
		if c.xLabels.size() != n {
			t.Errorf("after SetData with %d values: label pool = %d", n, c.xLabels.size())
		}
		if c.barRoot.NumChildren() != n {
			t.Errorf("after SetData with %d values: bar nodes = %d (leak)", n, c.barRoot.NumChildren())
		}
	}
}

func TestShrinkDisposesSurplusBars(t *testing.T) {
	c := newTestChart()
	c.SetDataAutoLabels([]float64{1, 2, 3, 4, 5})
	surplus := []*Node{c.bars.at(3), c.bars.at(4)}
	kept := []*Node{c.bars.at(0), c.bars.at(1), c.bars.at(2)}

	c.SetDataAutoLabels([]float64{1, 2, 3})

	for i, n := range surplus {
		if !n.IsDisposed() {
			t.Errorf("surplus bar %d not disposed", i+3)
		}
	}
	for i, n := range kept {
		if c.bars.at(i) != n {
			t.Errorf("bar %d recreated instead of reused", i)
		}
	}
}

func TestShortLabelsFallBackToIndices(t *testing.T) {
	c := newTestChart()
	c.SetData([]float64{1, 2, 3, 4, 5}, []string{"a", "b", "c"})

	want := []string{"a", "b", "c", "4", "5"}
	for i, w := range want {
		got := c.xLabels.at(i).Label.Content
		if got != w {
			t.Errorf("label %d = %q, want %q", i, got, w)
		}
	}
}

func TestNilValuesBecomeEmpty(t *testing.T) {
	c := newTestChart()
	c.SetData(nil, nil)

	if !c.HasData() {
		t.Error("chart should be in has-data state after SetData(nil)")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
	if c.bars.size() != 0 {
		t.Errorf("bar pool = %d, want 0", c.bars.size())
	}
}

func TestEmptyStateDrawsNothing(t *testing.T) {
	cfg := DefaultConfig()
	c := New(stubFont{advance: 6, height: 10}, cfg)
	c.SetSize(300, 200)

	if c.HasData() {
		t.Error("chart should start empty")
	}
	if c.overlay.NumChildren() != 0 {
		t.Errorf("overlay children = %d, want 0 while empty", c.overlay.NumChildren())
	}
	if c.background.Width != 0 {
		t.Error("background sized before any data")
	}
}

func TestResizeWhileEmptyIsRememberedNotRebuilt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PaddingLeft, cfg.PaddingBottom, cfg.PaddingRight, cfg.PaddingTop = 0, 0, 0, 0
	c := New(nil, cfg)

	c.SetSize(200, 150)
	if c.overlay.NumChildren() != 0 {
		t.Fatal("resize while empty triggered a rebuild")
	}

	// The recorded size is used by the first SetData.
	c.SetDataAutoLabels([]float64{1})
	if c.areaW != 200 || c.areaH != 150 {
		t.Errorf("plot area = %v×%v, want 200×150", c.areaW, c.areaH)
	}
}

func TestSetThemeAppliesOnlySuppliedColors(t *testing.T) {
	c := newTestChart()
	c.SetDataAutoLabels([]float64{1, 2})
	origAxis := c.cfg.Theme.Axis

	red := Color{R: 1, A: 1}
	c.SetTheme(ThemePatch{Bar: &red})

	if c.cfg.Theme.Bar != red {
		t.Error("bar color not applied")
	}
	if c.cfg.Theme.Axis != origAxis {
		t.Error("axis color changed by partial patch")
	}
	if got := c.bars.at(0).Color; got != red {
		t.Errorf("bar node color = %+v, want red after theme rebuild", got)
	}
}

func TestSetThemeKeepsDataAndAnimationClock(t *testing.T) {
	c := newTestChart()
	c.SetDataAutoLabels([]float64{10, 20})
	c.Advance(0.1)
	elapsed := c.anim.elapsed

	c.SetTheme(ThemePatch{Grid: &Color{A: 0.5}})

	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if c.anim.elapsed != elapsed {
		t.Errorf("elapsed = %v, want %v (theme must not restart animation)", c.anim.elapsed, elapsed)
	}
}

func TestSetYAxisMaxManualScaling(t *testing.T) {
	c := newTestChart()
	c.cfg.NiceScale = false
	c.SetDataAutoLabels([]float64{10, 20})
	finishAnimation(c)

	c.SetYAxisMax(40, false)
	finishAnimation(c)

	// areaH is 100: 20/40 of it is 50.
	if got := c.bars.at(1).Height; got != 50 {
		t.Errorf("bar height = %v, want 50 under manual max 40", got)
	}

	c.SetYAxisMax(0, true) // back to auto: ceiling = max = 20
	finishAnimation(c)
	if got := c.bars.at(1).Height; got != 100 {
		t.Errorf("bar height = %v, want 100 under auto scale", got)
	}
}

// snapshotTree collects the visual state of every node under root in tree
// order.
type nodeSnapshot struct {
	name    string
	x, y    float64
	w, h    float64
	color   Color
	content string
	visible bool
}

func snapshotTree(root *Node) []nodeSnapshot {
	var out []nodeSnapshot
	var walk func(n *Node)
	walk = func(n *Node) {
		s := nodeSnapshot{
			name: n.Name, x: n.X, y: n.Y, w: n.Width, h: n.Height,
			color: n.Color, visible: n.Visible,
		}
		if n.Label != nil {
			s.content = n.Label.Content
			s.color = n.Label.Color
		}
		out = append(out, s)
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(root)
	return out
}

func TestRebuildIsIdempotent(t *testing.T) {
	c := newTestChart()
	c.SetData([]float64{12, 47, 30}, []string{"a", "b", "c"})
	finishAnimation(c)

	first := snapshotTree(c.root)

	c.rebuild()
	c.applyHeights()
	second := snapshotTree(c.root)

	if len(first) != len(second) {
		t.Fatalf("node count changed: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("node %d differs:\n  first  %+v\n  second %+v", i, first[i], second[i])
		}
	}
}

func TestOverlayDoesNotLeakAcrossRebuilds(t *testing.T) {
	c := newTestChart()
	c.SetDataAutoLabels([]float64{1, 2, 3})
	count := c.overlay.NumChildren()

	for i := 0; i < 5; i++ {
		c.SetDataAutoLabels([]float64{1, 2, 3})
	}

	if got := c.overlay.NumChildren(); got != count {
		t.Errorf("overlay children = %d after rebuilds, want %d", got, count)
	}
}

func TestResizeRebuildsOncePerEvent(t *testing.T) {
	c := newTestChart()
	c.SetDataAutoLabels([]float64{1, 2})
	before := c.overlay.ChildAt(0)

	c.SetSize(240, 180)
	after := c.overlay.ChildAt(0)
	if after == before {
		t.Error("resize did not rebuild the overlay")
	}

	// Same size again: no rebuild.
	c.SetSize(240, 180)
	if c.overlay.ChildAt(0) != after {
		t.Error("no-op resize rebuilt the overlay")
	}
}

// reentrantFactory simulates a host layout side effect: creating a bar fires
// a resize notification back into the chart mid-rebuild.
type reentrantFactory struct {
	chart *Chart
	inner ElementFactory
	calls int
}

func (f *reentrantFactory) CreateBar(parent *Node, index int) *Node {
	f.calls++
	f.chart.SetSize(float64(500+f.calls), 400)
	return f.inner.CreateBar(parent, index)
}

func (f *reentrantFactory) CreateBarLabel(parent *Node, index int) *Node {
	return f.inner.CreateBarLabel(parent, index)
}

func (f *reentrantFactory) Destroy(n *Node) {
	f.inner.Destroy(n)
}

func TestRebuildSuppressesNestedTriggers(t *testing.T) {
	c := newTestChart()
	f := &reentrantFactory{chart: c, inner: nodeFactory{}}
	c.SetElementFactory(f)

	c.SetDataAutoLabels([]float64{1, 2, 3})

	if f.calls != 3 {
		t.Fatalf("CreateBar calls = %d, want 3 (nested rebuild ran)", f.calls)
	}
	if c.bars.size() != 3 {
		t.Errorf("bar pool = %d, want 3", c.bars.size())
	}
}

func TestConfigMinimumsClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickCount = 0
	cfg.TickLength = -4
	cfg.AnimateDuration = -1
	cfg.AxisThickness = 0
	cfg.BarSpacing = -2

	c := New(nil, cfg)

	if c.cfg.TickCount != 1 {
		t.Errorf("TickCount = %d, want 1", c.cfg.TickCount)
	}
	if c.cfg.TickLength != 0 {
		t.Errorf("TickLength = %v, want 0", c.cfg.TickLength)
	}
	if c.cfg.AnimateDuration != 0 {
		t.Errorf("AnimateDuration = %v, want 0", c.cfg.AnimateDuration)
	}
	if c.cfg.AxisThickness != 1 {
		t.Errorf("AxisThickness = %v, want 1", c.cfg.AxisThickness)
	}
	if c.cfg.BarSpacing != 0 {
		t.Errorf("BarSpacing = %v, want 0", c.cfg.BarSpacing)
	}
}
