package barchart

// Theme holds the chart's color set.
type Theme struct {
	Background Color
	Bar        Color
	Axis       Color
	Tick       Color
	Label      Color
	Grid       Color
}

// DefaultTheme returns a dark theme with a light accent bar color.
func DefaultTheme() Theme {
	return Theme{
		Background: Color{R: 0.08, G: 0.08, B: 0.1, A: 1},
		Bar:        Color{R: 0.35, G: 0.65, B: 0.95, A: 1},
		Axis:       Color{R: 0.85, G: 0.85, B: 0.88, A: 1},
		Tick:       Color{R: 0.85, G: 0.85, B: 0.88, A: 1},
		Label:      Color{R: 0.85, G: 0.85, B: 0.88, A: 1},
		Grid:       Color{R: 0.85, G: 0.85, B: 0.88, A: 0.15},
	}
}

// ThemePatch is a partial color update for Chart.SetTheme. Only non-nil
// fields are applied.
type ThemePatch struct {
	Background *Color
	Bar        *Color
	Axis       *Color
	Tick       *Color
	Label      *Color
	Grid       *Color
}

// apply copies the patch's non-nil fields onto t.
func (p ThemePatch) apply(t *Theme) {
	if p.Background != nil {
		t.Background = *p.Background
	}
	if p.Bar != nil {
		t.Bar = *p.Bar
	}
	if p.Axis != nil {
		t.Axis = *p.Axis
	}
	if p.Tick != nil {
		t.Tick = *p.Tick
	}
	if p.Label != nil {
		t.Label = *p.Label
	}
	if p.Grid != nil {
		t.Grid = *p.Grid
	}
}

// Config is the chart's full configuration surface. All fields have working
// defaults from DefaultConfig. Out-of-range values are clamped at rebuild
// time rather than rejected.
type Config struct {
	// Padding between the container edges and the plot area. Left and bottom
	// reserve space for axis and tick labels; right and top are plain
	// margins.
	PaddingLeft   float64
	PaddingBottom float64
	PaddingRight  float64
	PaddingTop    float64

	// BarSpacing is the horizontal gap between adjacent bars.
	BarSpacing float64

	// AxisThickness is the line width of both axis lines and tick marks.
	AxisThickness float64

	// TickLength is how far tick marks extend left of the Y axis.
	TickLength float64

	// TickCount is the number of ticks above the origin.
	TickCount int

	// Visibility toggles for the overlay elements.
	ShowTicks      bool
	ShowTickLabels bool
	ShowBarLabels  bool
	ShowGrid       bool

	// AutoScale derives the axis ceiling from the data maximum; when false,
	// YAxisMax is used instead.
	AutoScale bool
	YAxisMax  float64

	// NiceScale rounds the axis ceiling up to a 1/2/5/10 multiple so tick
	// values land on round numbers.
	NiceScale bool

	// Animate enables bar height animation on data change, lasting
	// AnimateDuration seconds.
	Animate         bool
	AnimateDuration float64

	Theme Theme
}

// DefaultConfig returns the configuration a freshly constructed chart uses.
func DefaultConfig() Config {
	return Config{
		PaddingLeft:     56,
		PaddingBottom:   28,
		PaddingRight:    12,
		PaddingTop:      12,
		BarSpacing:      6,
		AxisThickness:   2,
		TickLength:      6,
		TickCount:       5,
		ShowTicks:       true,
		ShowTickLabels:  true,
		ShowBarLabels:   true,
		ShowGrid:        true,
		AutoScale:       true,
		YAxisMax:        10,
		NiceScale:       true,
		Animate:         true,
		AnimateDuration: 0.4,
		Theme:           DefaultTheme(),
	}
}

// normalize clamps the configuration minimums in place.
func (c *Config) normalize() {
	if c.PaddingLeft < 0 {
		c.PaddingLeft = 0
	}
	if c.PaddingBottom < 0 {
		c.PaddingBottom = 0
	}
	if c.PaddingRight < 0 {
		c.PaddingRight = 0
	}
	if c.PaddingTop < 0 {
		c.PaddingTop = 0
	}
	if c.BarSpacing < 0 {
		c.BarSpacing = 0
	}
	if c.AxisThickness < 1 {
		c.AxisThickness = 1
	}
	if c.TickLength < 0 {
		c.TickLength = 0
	}
	if c.TickCount < 1 {
		c.TickCount = 1
	}
	if c.AnimateDuration < 0 {
		c.AnimateDuration = 0
	}
}
