package domain

import "time"

// TimeWindow is one horizontally juxtaposed sub-chart covering an
// inclusive date range at its own magnification.
type TimeWindow struct {
	ID              int
	Start           time.Time
	Finish          time.Time
	WidthProportion float64
	Scales          []Scale
}

// DurationDays counts the days in the window, both endpoints included.
func (w TimeWindow) DurationDays() int {
	return DaysBetween(w.Start, w.Finish) + 1
}

// Contains reports whether d falls inside the window.
func (w TimeWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.Finish)
}

// Overlaps reports whether the inclusive range [start, finish] shares at
// least one day with the window.
func (w TimeWindow) Overlaps(start, finish time.Time) bool {
	return !finish.Before(w.Start) && !start.After(w.Finish)
}

// Scale is one calendar band stacked above the rows of a window.
type Scale struct {
	Granularity   Granularity
	Visible       bool
	ShowGridlines bool
	Height        float64
}
