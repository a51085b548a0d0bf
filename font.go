package barchart

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement. Label nodes measure through it
// for alignment; rendering goes through the concrete *TTFFont. Implementations
// other than *TTFFont are measured but not drawn, which keeps layout tests
// independent of any rasterizer.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("barchart: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	w, h := text.Measure(s, f.face, f.lh)
	return w, h
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 use.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- LabelBlock ---

// LabelBlock holds the text content and formatting of a label node.
// Chart labels are single-line; Align selects which edge of the text the
// node's X position anchors.
type LabelBlock struct {
	Content string
	Font    Font
	Align   TextAlign
	Color   Color
}

// Measure returns the rendered size of the label's content, or zeros when no
// font is set.
func (lb *LabelBlock) Measure() (width, height float64) {
	if lb.Font == nil || lb.Content == "" {
		return 0, 0
	}
	return lb.Font.MeasureString(lb.Content)
}

// alignOffset returns the X offset applied at draw time for the block's
// alignment mode.
func (lb *LabelBlock) alignOffset() float64 {
	if lb.Align == TextAlignLeft {
		return 0
	}
	w, _ := lb.Measure()
	if lb.Align == TextAlignCenter {
		return -w / 2
	}
	return -w
}
