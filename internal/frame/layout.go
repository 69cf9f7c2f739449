// Package frame computes the nested rectangles of a chart: the outer frame,
// header and footer bands, the time windows, and inside each window the
// scale bands stacked above the shared row band.
package frame

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/geom"
	"github.com/alexanderramin/compactgantt/internal/timescale"
)

// Window is one time window positioned inside the inner frame.
type Window struct {
	Model      domain.TimeWindow
	Rect       geom.Rect
	ScaleBands []geom.Rect
	RowBand    geom.Rect
	Mapper     timescale.Mapper
}

// Layout holds every frame rectangle for one render.
type Layout struct {
	Canvas    geom.Rect
	Outer     geom.Rect
	Header    geom.Rect
	Footer    geom.Rect
	Inner     geom.Rect
	Windows   []Window
	NumRows   int
	RowHeight float64
}

// Compute lays out the frame of p. The project is not modified; windows
// are ordered by start date on a copy.
func Compute(p *domain.Project, cfg config.EngineConfig) (*Layout, error) {
	f := p.Frame
	if f.NumRows < 1 {
		return nil, &domain.ConfigurationError{Field: "num_rows", Reason: fmt.Sprintf("must be at least 1, got %d", f.NumRows)}
	}

	windows := slices.Clone(p.Windows)
	slices.SortStableFunc(windows, func(a, b domain.TimeWindow) int {
		return a.Start.Compare(b.Start)
	})
	if err := domain.ValidateWindows(windows, cfg.ProportionTolerance); err != nil {
		return nil, err
	}

	l := &Layout{
		Canvas:  geom.Rect{W: f.Width, H: f.Height},
		NumRows: f.NumRows,
	}
	l.Outer = l.Canvas.Inset(f.Margins.Top, f.Margins.Right, f.Margins.Bottom, f.Margins.Left)
	if l.Outer.W <= 0 || l.Outer.H <= 0 {
		return nil, &domain.ConfigurationError{Field: "frame", Reason: "margins leave no drawable area"}
	}

	var rest geom.Rect
	l.Header, rest = l.Outer.SplitTop(f.HeaderHeight)
	l.Inner, l.Footer = rest.SplitBottom(f.FooterHeight)
	if l.Inner.H <= 0 {
		return nil, &domain.ConfigurationError{Field: "frame", Reason: "header and footer leave no room for the chart"}
	}

	heights := scaleHeights(windows[0].Scales)
	scaleTotal := 0.0
	for _, h := range heights {
		scaleTotal += h
	}
	rowBandHeight := l.Inner.H - scaleTotal
	if rowBandHeight <= 0 {
		return nil, &domain.ConfigurationError{
			Field:  "scales",
			Reason: fmt.Sprintf("scale bands (%g) leave no room for rows in an inner height of %g", scaleTotal, l.Inner.H),
		}
	}
	l.RowHeight = rowBandHeight / float64(f.NumRows)

	proportions := make([]float64, len(windows))
	for i, w := range windows {
		proportions[i] = w.WidthProportion
	}
	for i, rect := range l.Inner.SplitColumns(proportions) {
		scaleRegion, rowBand := rect.SplitTop(scaleTotal)
		l.Windows = append(l.Windows, Window{
			Model:      windows[i],
			Rect:       rect,
			ScaleBands: scaleRegion.SplitRows(heights),
			RowBand:    rowBand,
			Mapper:     timescale.NewMapper(windows[i], rect),
		})
	}
	return l, nil
}

// scaleHeights returns each scale's band height; hidden scales take none.
func scaleHeights(scales []domain.Scale) []float64 {
	hs := make([]float64, len(scales))
	for i, s := range scales {
		if s.Visible && s.Height > 0 {
			hs[i] = s.Height
		}
	}
	return hs
}

// RowBand spans every window's row band.
func (l *Layout) RowBand() geom.Rect {
	first := l.Windows[0].RowBand
	return geom.Rect{X: l.Inner.X, Y: first.Y, W: l.Inner.W, H: first.H}
}

// RowTop returns the y of the top edge of 1-based row.
func (l *Layout) RowTop(row int) float64 {
	return l.Windows[0].RowBand.Y + float64(row-1)*l.RowHeight
}

// Rows returns the rectangle spanning rows [from, to] across all windows.
func (l *Layout) Rows(from, to int) geom.Rect {
	band := l.RowBand()
	return geom.Rect{X: band.X, Y: l.RowTop(from), W: band.W, H: float64(to-from+1) * l.RowHeight}
}

// WindowAt returns the window whose date range contains d.
func (l *Layout) WindowAt(d time.Time) (Window, bool) {
	for _, w := range l.Windows {
		if w.Model.Contains(domain.Day(d)) {
			return w, true
		}
	}
	return Window{}, false
}
