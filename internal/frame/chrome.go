package frame

import (
	"github.com/alexanderramin/compactgantt/internal/draw"
	"github.com/alexanderramin/compactgantt/internal/geom"
)

// ChromeStyle holds the resolved colours and sizes of the frame decoration.
type ChromeStyle struct {
	Background  string
	BandFill    string
	BandStroke  string
	TextColor   string
	FontSize    float64
	Border      string
	BorderWidth float64
}

// Background paints the whole canvas. It is always the first instruction.
func (l *Layout) Background(st ChromeStyle) draw.Instruction {
	return draw.Rect{X: l.Canvas.X, Y: l.Canvas.Y, W: l.Canvas.W, H: l.Canvas.H, Fill: st.Background, Stroke: draw.ColorNone}
}

// HeaderFooter draws the header and footer bands with their centred text.
// Bands of zero height are skipped.
func (l *Layout) HeaderFooter(header, footer string, st ChromeStyle) []draw.Instruction {
	var out []draw.Instruction
	out = append(out, titledBand(l.Header, header, st)...)
	out = append(out, titledBand(l.Footer, footer, st)...)
	return out
}

func titledBand(r geom.Rect, text string, st ChromeStyle) []draw.Instruction {
	if r.H <= 0 {
		return nil
	}
	out := []draw.Instruction{draw.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H, Fill: st.BandFill, Stroke: st.BandStroke, StrokeWidth: 1}}
	if text != "" {
		c := r.Center()
		out = append(out, draw.Text{
			X: c.X, Y: c.Y, Anchor: draw.AnchorMiddle, Baseline: draw.BaselineMiddle,
			Content: text, Color: st.TextColor, FontSize: st.FontSize,
		})
	}
	return out
}

// Border outlines the outer frame. It is always the last instruction.
func (l *Layout) Border(st ChromeStyle) draw.Instruction {
	return draw.Rect{
		X: l.Outer.X, Y: l.Outer.Y, W: l.Outer.W, H: l.Outer.H,
		Fill: draw.ColorNone, Stroke: st.Border, StrokeWidth: st.BorderWidth,
	}
}

// RowLines draws the horizontal boundaries between rows across the row band.
func (l *Layout) RowLines(stroke string, width float64) []draw.Instruction {
	band := l.RowBand()
	out := make([]draw.Instruction, 0, l.NumRows+1)
	for i := 0; i <= l.NumRows; i++ {
		y := band.Y + float64(i)*l.RowHeight
		out = append(out, draw.Line{X1: band.Left(), Y1: y, X2: band.Right(), Y2: y, Stroke: stroke, Width: width})
	}
	return out
}
