package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Day parses a YYYY-MM-DD literal and panics on malformed input.
func Day(s string) time.Time {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(fmt.Sprintf("testutil.Day(%q): %v", s, err))
	}
	return d
}

// Project options
type ProjectOption func(*domain.Project)

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func WithRows(n int) ProjectOption {
	return func(p *domain.Project) {
		p.Frame.NumRows = n
	}
}

func WithFrame(fn func(f *domain.Frame)) ProjectOption {
	return func(p *domain.Project) {
		fn(&p.Frame)
	}
}

func WithWindows(ws ...domain.TimeWindow) ProjectOption {
	return func(p *domain.Project) {
		p.Windows = ws
	}
}

func WithTasks(ts ...domain.Task) ProjectOption {
	return func(p *domain.Project) {
		p.Tasks = append(p.Tasks, ts...)
	}
}

func WithSwimlanes(ss ...domain.Swimlane) ProjectOption {
	return func(p *domain.Project) {
		p.Swimlanes = append(p.Swimlanes, ss...)
	}
}

func WithConnectors(cs ...domain.Connector) ProjectOption {
	return func(p *domain.Project) {
		p.Connectors = append(p.Connectors, cs...)
	}
}

func WithCurtains(cs ...domain.Curtain) ProjectOption {
	return func(p *domain.Project) {
		p.Curtains = append(p.Curtains, cs...)
	}
}

func WithPipes(ps ...domain.Pipe) ProjectOption {
	return func(p *domain.Project) {
		p.Pipes = append(p.Pipes, ps...)
	}
}

func WithTextBoxes(tbs ...domain.TextBox) ProjectOption {
	return func(p *domain.Project) {
		p.TextBoxes = append(p.TextBoxes, tbs...)
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

// NewTestWindow builds a window with month and day scales.
func NewTestWindow(id int, start, finish string, proportion float64) domain.TimeWindow {
	return domain.TimeWindow{
		ID: id, Start: Day(start), Finish: Day(finish), WidthProportion: proportion,
		Scales: []domain.Scale{
			{Granularity: domain.GranularityMonth, Visible: true, ShowGridlines: true, Height: 20},
			{Granularity: domain.GranularityDay, Visible: true, Height: 20},
		},
	}
}

// NewTestProject returns an 800x400 chart over the first quarter of 2025
// with five rows and no entities.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:      uuid.New().String(),
		ShortID: defaultShortID(name),
		Name:    name,
		Frame: domain.Frame{
			Width: 800, Height: 400,
			Margins:      domain.Margins{Top: 10, Right: 10, Bottom: 10, Left: 10},
			HeaderText:   name,
			HeaderHeight: 30,
			FooterHeight: 20,
			NumRows:      5,
		},
		DateFormat: domain.DateLayout,
		Windows:    []domain.TimeWindow{NewTestWindow(1, "2025-01-01", "2025-03-31", 1)},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithRow(row int) TaskOption {
	return func(t *domain.Task) {
		t.Row = row
	}
}

func WithLabel(cfg domain.LabelConfig) TaskOption {
	return func(t *domain.Task) {
		t.Label = cfg
	}
}

func WithFill(color string) TaskOption {
	return func(t *domain.Task) {
		t.FillColor = color
	}
}

// NewTestTask returns a task on row 1 labelled to its right.
func NewTestTask(id int, name, start, finish string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID: id, Name: name, Start: Day(start), Finish: Day(finish), Row: 1,
		Label: domain.LabelConfig{
			Placement:        domain.PlacementToRight,
			Alignment:        domain.AlignLeft,
			HorizontalOffset: 0.5,
			ShowLeaderLine:   true,
		},
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
