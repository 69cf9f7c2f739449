package timescale

import (
	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/draw"
	"github.com/alexanderramin/compactgantt/internal/geom"
)

// Tier is the label treatment an interval gets at its pixel width.
type Tier int

const (
	// TierNone cells are too narrow to draw: no label, no separator.
	TierNone Tier = iota
	TierBlank
	TierShort
	TierFull
)

func (t Tier) String() string {
	switch t {
	case TierBlank:
		return "blank"
	case TierShort:
		return "short"
	case TierFull:
		return "full"
	default:
		return "none"
	}
}

// TierFor picks the label tier for a cell of the given width.
func TierFor(width float64, th config.Thresholds) Tier {
	switch {
	case width >= th.FullLabelWidth:
		return TierFull
	case width >= th.ShortLabelWidth:
		return TierShort
	case width >= th.MinCellWidth:
		return TierBlank
	default:
		return TierNone
	}
}

// Cell is an interval positioned in pixels.
type Cell struct {
	Interval
	X0   float64
	X1   float64
	Tier Tier
}

func (c Cell) Width() float64 { return c.X1 - c.X0 }

// Label returns the text the cell displays, empty for blank and hidden cells.
func (c Cell) Label() string {
	switch c.Tier {
	case TierFull:
		return c.FullLabel()
	case TierShort:
		return c.ShortLabel()
	default:
		return ""
	}
}

// Band is one scale laid out across one window.
type Band struct {
	Scale domain.Scale
	Rect  geom.Rect
	Cells []Cell
}

// LayoutBand positions every calendar interval of scale s inside rect. A
// scale that is not visible still yields cells so its gridlines can be drawn.
func LayoutBand(m Mapper, s domain.Scale, rect geom.Rect, th config.Thresholds) Band {
	intervals := Intervals(s.Granularity, m.Window.Start, m.Window.Finish)
	cells := make([]Cell, len(intervals))
	for i, iv := range intervals {
		x0, x1 := m.Span(iv.Start, iv.Finish)
		cells[i] = Cell{Interval: iv, X0: x0, X1: x1, Tier: TierFor(x1-x0, th)}
	}
	return Band{Scale: s, Rect: rect, Cells: cells}
}

// Separators returns the x positions of the cell boundaries that get a
// divider: the end of each drawable cell, excluding the window's own edge.
func (b Band) Separators() []float64 {
	var xs []float64
	for _, c := range b.Cells {
		if c.Tier == TierNone {
			continue
		}
		if c.X1 < b.Rect.Right()-1e-9 {
			xs = append(xs, c.X1)
		}
	}
	return xs
}

// BandStyle carries the resolved presentation of a scale band.
type BandStyle struct {
	Fill        string
	Stroke      string
	TextColor   string
	FontSize    float64
	StrokeWidth float64
}

// Instructions draws the band: background, separators, then centred labels.
// Invisible bands draw nothing.
func (b Band) Instructions(st BandStyle) []draw.Instruction {
	if !b.Scale.Visible || b.Rect.H <= 0 {
		return nil
	}
	out := []draw.Instruction{draw.Rect{
		X: b.Rect.X, Y: b.Rect.Y, W: b.Rect.W, H: b.Rect.H,
		Fill: st.Fill, Stroke: st.Stroke, StrokeWidth: st.StrokeWidth,
	}}
	for _, x := range b.Separators() {
		out = append(out, draw.Line{
			X1: x, Y1: b.Rect.Top(), X2: x, Y2: b.Rect.Bottom(),
			Stroke: st.Stroke, Width: st.StrokeWidth,
		})
	}
	cy := b.Rect.Center().Y
	for _, c := range b.Cells {
		text := c.Label()
		if text == "" {
			continue
		}
		out = append(out, draw.Text{
			X: (c.X0 + c.X1) / 2, Y: cy,
			Anchor: draw.AnchorMiddle, Baseline: draw.BaselineMiddle,
			Content: text, Color: st.TextColor, FontSize: st.FontSize,
		})
	}
	return out
}
