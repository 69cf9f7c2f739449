package domain

import (
	"strings"
	"time"
)

// UnnamedLabel replaces blank task names on the chart.
const UnnamedLabel = "Unnamed"

type LabelConfig struct {
	Placement        Placement
	Hidden           bool
	Alignment        Alignment
	HorizontalOffset float64 // day widths
	VerticalOffset   float64 // row heights
	TextColor        string
	// ShowLeaderLine gates the leader line for visible labels placed outside
	// the shape. With it false no leader is drawn for any placement. The
	// importer defaults it to true.
	ShowLeaderLine bool
}

// Task is a bar on the chart. A task whose start equals its finish, or one
// flagged IsMilestone, is drawn as a milestone diamond.
type Task struct {
	ID          int
	Name        string
	Start       time.Time
	Finish      time.Time
	Row         int
	IsMilestone bool
	FillColor   string
	Label       LabelConfig
}

// Milestone reports whether the task renders as a single-date diamond.
func (t Task) Milestone() bool {
	return t.IsMilestone || t.Start.Equal(t.Finish)
}

// DisplayName returns the label text, substituting UnnamedLabel for blanks.
func (t Task) DisplayName() string {
	if strings.TrimSpace(t.Name) == "" {
		return UnnamedLabel
	}
	return t.Name
}

// Connector links two tasks or milestones, directed from From to To.
type Connector struct {
	ID     int
	FromID int
	ToID   int
	Color  string
}

// Curtain shades a date range across the full row band.
type Curtain struct {
	ID    int
	Name  string
	From  time.Time
	To    time.Time
	Color string
}

// Pipe is a vertical marker line on a single date.
type Pipe struct {
	ID    int
	Name  string
	Date  time.Time
	Color string
}

// TextBox is free text at absolute chart coordinates.
type TextBox struct {
	ID    int
	Text  string
	X     float64
	Y     float64
	Color string
}

// Swimlane groups the contiguous rows [FromRow, ToRow] under one tinted band.
type Swimlane struct {
	ID      int
	Title   string
	FromRow int
	ToRow   int
	Color   string
	MinRows int
}

// RowCount returns the number of rows the swimlane spans.
func (s Swimlane) RowCount() int {
	return s.ToRow - s.FromRow + 1
}
