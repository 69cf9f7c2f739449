// Package swimlane lays out the tinted bands that group contiguous rows.
package swimlane

import (
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/draw"
	"github.com/alexanderramin/compactgantt/internal/frame"
	"github.com/alexanderramin/compactgantt/internal/geom"
)

// Lane is a swimlane positioned over the row band.
type Lane struct {
	Model domain.Swimlane
	Rect  geom.Rect
}

// Layout positions every swimlane across the full width of the row band.
// Out-of-range or overlapping row ranges are a configuration error.
func Layout(lanes []domain.Swimlane, l *frame.Layout) ([]Lane, error) {
	if err := domain.ValidateSwimlanes(lanes, l.NumRows); err != nil {
		return nil, err
	}
	out := make([]Lane, len(lanes))
	for i, s := range lanes {
		out[i] = Lane{Model: s, Rect: l.Rows(s.FromRow, s.ToRow)}
	}
	return out, nil
}

type Style struct {
	DefaultFill string
	TextColor   string
	FontSize    float64
	Padding     float64
	Color       draw.ColorFunc
}

// Instructions draws each lane's band followed by its title, which sits in
// the band's bottom-right corner.
func Instructions(lanes []Lane, st Style) []draw.Instruction {
	resolve := st.Color
	if resolve == nil {
		resolve = draw.Resolve
	}
	out := make([]draw.Instruction, 0, 2*len(lanes))
	for _, lane := range lanes {
		r := lane.Rect
		out = append(out, draw.Rect{
			X: r.X, Y: r.Y, W: r.W, H: r.H,
			Fill: resolve(lane.Model.Color, st.DefaultFill), Stroke: draw.ColorNone,
		})
	}
	for _, lane := range lanes {
		if lane.Model.Title == "" {
			continue
		}
		r := lane.Rect
		out = append(out, draw.Text{
			X: r.Right() - st.Padding, Y: r.Bottom() - st.Padding,
			Anchor: draw.AnchorEnd, Baseline: draw.BaselineAlphabetic,
			Content: lane.Model.Title, Color: st.TextColor, FontSize: st.FontSize,
		})
	}
	return out
}
