package domain

import (
	"fmt"
	"math"
	"sort"
)

// ValidateWindows checks the time-window sequence: non-empty, ordered,
// contiguous, proportions in (0,1] summing to 1 within tolerance, and the
// same scale stack shape in every window.
func ValidateWindows(windows []TimeWindow, tolerance float64) error {
	if len(windows) == 0 {
		return configErr("windows", "at least one time window is required")
	}

	sum := 0.0
	for i, w := range windows {
		field := fmt.Sprintf("windows[%d]", i)
		if w.Finish.Before(w.Start) {
			return configErr(field, "finish %s is before start %s", w.Finish.Format(DateLayout), w.Start.Format(DateLayout))
		}
		if w.WidthProportion <= 0 || w.WidthProportion > 1 {
			return configErr(field+".width_proportion", "must be in (0, 1], got %g", w.WidthProportion)
		}
		sum += w.WidthProportion

		if i > 0 {
			prev := windows[i-1]
			want := AddDays(prev.Finish, 1)
			if !Day(w.Start).Equal(want) {
				return configErr(field+".start", "must be %s (day after previous finish), got %s",
					want.Format(DateLayout), w.Start.Format(DateLayout))
			}
		}
		if len(w.Scales) == 0 {
			return configErr(field+".scales", "at least one scale is required")
		}
		if i > 0 {
			if err := sameScaleStack(windows[0].Scales, w.Scales, field); err != nil {
				return err
			}
		}
	}

	if math.Abs(sum-1.0) > tolerance {
		return configErr("windows", "width proportions sum to %g, want 1.0", sum)
	}
	return nil
}

func sameScaleStack(first, other []Scale, field string) error {
	if len(first) != len(other) {
		return configErr(field+".scales", "has %d scales, first window has %d", len(other), len(first))
	}
	for j := range first {
		if first[j].Granularity != other[j].Granularity {
			return configErr(fmt.Sprintf("%s.scales[%d]", field, j), "granularity %q does not match first window's %q",
				other[j].Granularity, first[j].Granularity)
		}
	}
	return nil
}

// ValidateSwimlanes checks that every swimlane lies inside [1, numRows]
// and that no two swimlanes share a row.
func ValidateSwimlanes(lanes []Swimlane, numRows int) error {
	for i, s := range lanes {
		field := fmt.Sprintf("swimlanes[%d]", i)
		if s.FromRow < 1 || s.ToRow > numRows || s.FromRow > s.ToRow {
			return configErr(field, "row range [%d,%d] outside [1,%d]", s.FromRow, s.ToRow, numRows)
		}
	}

	sorted := make([]Swimlane, len(lanes))
	copy(sorted, lanes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FromRow < sorted[j].FromRow })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].FromRow <= sorted[i-1].ToRow {
			return configErr("swimlanes", "swimlane %d rows [%d,%d] overlap swimlane %d rows [%d,%d]",
				sorted[i].ID, sorted[i].FromRow, sorted[i].ToRow,
				sorted[i-1].ID, sorted[i-1].FromRow, sorted[i-1].ToRow)
		}
	}
	return nil
}

// ValidateTask re-checks the per-task invariants the engine relies on.
func ValidateTask(t Task, numRows int) error {
	field := fmt.Sprintf("tasks[id=%d]", t.ID)
	if t.Finish.Before(t.Start) {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("finish %s is before start %s",
			t.Finish.Format(DateLayout), t.Start.Format(DateLayout))}
	}
	if t.Row < 1 || t.Row > numRows {
		return &ValidationError{Field: field + ".row", Reason: fmt.Sprintf("row %d outside [1,%d]", t.Row, numRows)}
	}
	return nil
}
