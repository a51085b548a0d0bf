package barchart

// Layout constants for gaps the configuration doesn't expose.
const (
	tickLabelGap = 4 // between tick label right edge and tick mark
	barLabelGap  = 4 // between axis underside and bar label top
	gridLineSize = 1 // grid line thickness
)

// rebuild is the full redraw pass: it resizes the plot area to the container
// bounds minus padding, recreates the overlay (axes, ticks, grid, tick
// labels) from scratch, resizes the bar and bar-label pools to the data
// count, and positions every element from the current scale.
//
// Deterministic and idempotent: two consecutive calls with unchanged state
// produce identical output. Bar heights are left at a placeholder; the
// animator applies real heights afterward.
func (c *Chart) rebuild() {
	if c.status != statusIdle {
		return
	}
	c.status = statusRebuilding
	defer func() { c.status = statusIdle }()

	cfg := &c.cfg
	theme := &cfg.Theme

	aw := c.width - cfg.PaddingLeft - cfg.PaddingRight
	if aw < 0 {
		aw = 0
	}
	ah := c.height - cfg.PaddingTop - cfg.PaddingBottom
	if ah < 0 {
		ah = 0
	}
	c.areaW, c.areaH = aw, ah

	c.background.Width = c.width
	c.background.Height = c.height
	c.background.Color = theme.Background

	c.plot.SetPosition(cfg.PaddingLeft, cfg.PaddingTop)

	// Overlay elements are never pooled: their count is small and driven by
	// configuration, so they are destroyed and recreated wholesale. This also
	// guarantees no stale element survives a config change.
	c.overlay.DisposeChildren()
	c.buildAxes(aw, ah)
	c.buildTicks(aw, ah)
	c.buildBars(aw, ah)
}

// buildAxes draws the bottom and left axis lines.
func (c *Chart) buildAxes(aw, ah float64) {
	th := c.cfg.AxisThickness
	theme := &c.cfg.Theme

	xAxis := NewRect("x-axis")
	xAxis.X = 0
	xAxis.Y = ah
	xAxis.Width = aw
	xAxis.Height = th
	xAxis.Color = theme.Axis
	c.overlay.AddChild(xAxis)

	// The vertical line overshoots by one thickness to fill the corner where
	// the axes meet.
	yAxis := NewRect("y-axis")
	yAxis.X = -th
	yAxis.Y = 0
	yAxis.Width = th
	yAxis.Height = ah + th
	yAxis.Color = theme.Axis
	c.overlay.AddChild(yAxis)
}

// buildTicks draws tick marks, grid lines, and tick value labels at
// i/tickCount fractions of the plot height, labeled with the matching
// fraction of the axis ceiling.
func (c *Chart) buildTicks(aw, ah float64) {
	cfg := &c.cfg
	theme := &cfg.Theme
	if !cfg.ShowTicks && !cfg.ShowGrid && !cfg.ShowTickLabels {
		return
	}

	ceiling := axisCeiling(c.values, *cfg)
	th := cfg.AxisThickness

	var lineHeight float64
	if c.font != nil {
		lineHeight = c.font.LineHeight()
	}

	for i := 1; i <= cfg.TickCount; i++ {
		frac := float64(i) / float64(cfg.TickCount)
		y := ah - frac*ah

		if cfg.ShowGrid {
			grid := NewRect("grid")
			grid.X = 0
			grid.Y = y
			grid.Width = aw
			grid.Height = gridLineSize
			grid.Color = theme.Grid
			c.overlay.AddChild(grid)
		}

		if cfg.ShowTicks {
			tick := NewRect("tick")
			tick.X = -th - cfg.TickLength
			tick.Y = y - th/2
			tick.Width = cfg.TickLength
			tick.Height = th
			tick.Color = theme.Tick
			c.overlay.AddChild(tick)
		}

		if cfg.ShowTickLabels {
			label := NewLabel("tick-label", formatTickValue(frac*ceiling), c.font)
			label.Label.Align = TextAlignRight
			label.Label.Color = theme.Label
			label.X = -th - cfg.TickLength - tickLabelGap
			label.Y = y - lineHeight/2
			c.overlay.AddChild(label)
		}
	}
}

// buildBars resizes both pools to the data count and lays out bar positions
// and widths plus the label row under the axis. Heights are placeholders
// until the animator's next apply.
func (c *Chart) buildBars(aw, ah float64) {
	cfg := &c.cfg
	theme := &cfg.Theme
	n := len(c.values)

	c.bars.resize(n)
	c.xLabels.resize(n)
	if n == 0 {
		return
	}

	barWidth := (aw - float64(n-1)*cfg.BarSpacing) / float64(n)
	if barWidth < 1 {
		barWidth = 1
	}
	labelY := ah + cfg.AxisThickness + barLabelGap

	for i := 0; i < n; i++ {
		center := float64(i)*(barWidth+cfg.BarSpacing) + barWidth/2

		bar := c.bars.at(i)
		bar.X = center - barWidth/2
		bar.Y = ah - 1
		bar.Width = barWidth
		bar.Height = 1
		bar.Color = theme.Bar
		bar.Visible = true

		label := c.xLabels.at(i)
		label.X = center
		label.Y = labelY
		label.Visible = cfg.ShowBarLabels
		if label.Label != nil {
			label.Label.Content = c.labelFor(i)
			label.Label.Color = theme.Label
		}
	}
}

// BarWidth returns the width each bar had at the last rebuild, or 0 with no
// data.
func (c *Chart) BarWidth() float64 {
	if len(c.values) == 0 {
		return 0
	}
	return c.bars.at(0).Width
}
