// Package timescale maps calendar dates onto the horizontal pixel range of
// a time window and lays out the calendar bands drawn above the rows.
package timescale

import (
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/geom"
)

// Mapper converts dates to x coordinates inside one window. X(d) is the
// left edge of day d, so a day occupies [X(d), EndX(d)).
type Mapper struct {
	Window domain.TimeWindow
	Rect   geom.Rect
}

func NewMapper(w domain.TimeWindow, rect geom.Rect) Mapper {
	return Mapper{Window: w, Rect: rect}
}

// DayWidth is the pixel width of one day in this window.
func (m Mapper) DayWidth() float64 {
	return m.Rect.W / float64(m.Window.DurationDays())
}

// X returns the left edge of day d. The day after the window's finish maps
// exactly onto the window's right edge so neighbouring windows share it.
func (m Mapper) X(d time.Time) float64 {
	days := domain.DaysBetween(m.Window.Start, d)
	if days == m.Window.DurationDays() {
		return m.Rect.Right()
	}
	return m.Rect.X + float64(days)*m.DayWidth()
}

// EndX returns the right edge of day d.
func (m Mapper) EndX(d time.Time) float64 {
	return m.X(domain.AddDays(d, 1))
}

// Span returns the pixel extent of the inclusive range [start, finish].
func (m Mapper) Span(start, finish time.Time) (float64, float64) {
	return m.X(start), m.EndX(finish)
}

// Clip restricts [start, finish] to the window. ok is false when the range
// and the window share no day.
func (m Mapper) Clip(start, finish time.Time) (time.Time, time.Time, bool) {
	if !m.Window.Overlaps(start, finish) {
		return time.Time{}, time.Time{}, false
	}
	return domain.MaxDay(start, m.Window.Start), domain.MinDay(finish, m.Window.Finish), true
}
