package timescale

import (
	"fmt"
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
)

// Interval is one calendar unit, already clipped to the window it belongs to.
type Interval struct {
	Granularity domain.Granularity
	Start       time.Time
	Finish      time.Time
}

// Intervals splits [start, finish] on calendar boundaries of granularity g.
// The first and last intervals are clipped to the range.
func Intervals(g domain.Granularity, start, finish time.Time) []Interval {
	start, finish = domain.Day(start), domain.Day(finish)
	var out []Interval
	for cur := start; !cur.After(finish); {
		end := domain.MinDay(unitEnd(g, cur), finish)
		out = append(out, Interval{Granularity: g, Start: cur, Finish: end})
		cur = domain.AddDays(end, 1)
	}
	return out
}

// unitEnd returns the last day of the calendar unit containing d.
func unitEnd(g domain.Granularity, d time.Time) time.Time {
	switch g {
	case domain.GranularityYear:
		return time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	case domain.GranularityMonth:
		return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	case domain.GranularityWeek:
		// ISO weeks run Monday to Sunday.
		offset := (7 - int(d.Weekday())) % 7
		return domain.AddDays(d, offset)
	default:
		return d
	}
}

// FullLabel is the text used when the interval is wide enough for it.
func (iv Interval) FullLabel() string {
	switch iv.Granularity {
	case domain.GranularityYear:
		return fmt.Sprintf("%d", iv.Start.Year())
	case domain.GranularityMonth:
		return iv.Start.Month().String()[:3]
	case domain.GranularityWeek:
		_, week := iv.Start.ISOWeek()
		return fmt.Sprintf("Wk %02d", week)
	default:
		return fmt.Sprintf("%s %d", iv.Start.Weekday().String()[:3], iv.Start.Day())
	}
}

// ShortLabel is the abbreviated form of FullLabel.
func (iv Interval) ShortLabel() string {
	switch iv.Granularity {
	case domain.GranularityYear:
		return fmt.Sprintf("%02d", iv.Start.Year()%100)
	case domain.GranularityMonth:
		return iv.Start.Month().String()[:1]
	case domain.GranularityWeek:
		_, week := iv.Start.ISOWeek()
		return fmt.Sprintf("%02d", week)
	default:
		return fmt.Sprintf("%d", iv.Start.Day())
	}
}
