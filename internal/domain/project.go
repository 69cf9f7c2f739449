package domain

import (
	"fmt"
	"regexp"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

// Project is a complete chart snapshot: frame settings plus every entity
// drawn on the chart. The engine treats it as read-only.
type Project struct {
	ID         string
	ShortID    string
	Name       string
	Frame      Frame
	Typography Typography
	DateFormat string

	Windows    []TimeWindow
	Swimlanes  []Swimlane
	Tasks      []Task
	Connectors []Connector
	Curtains   []Curtain
	Pipes      []Pipe
	TextBoxes  []TextBox

	// Revision counts stored versions of the snapshot; 0 until persisted.
	Revision  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Revision is one stored version of a project snapshot.
type Revision struct {
	ID        string
	ProjectID string
	Number    int
	Note      string
	CreatedAt time.Time
}

// Margins are the gaps between the outer chart edge and the drawn frame.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

type Frame struct {
	Width               float64
	Height              float64
	Margins             Margins
	HeaderText          string
	HeaderHeight        float64
	FooterText          string
	FooterHeight        float64
	NumRows             int
	HorizontalGridlines bool
}

// Typography overrides the engine's default font settings. Zero values
// fall back to the engine configuration.
type Typography struct {
	FontFamily           string
	TaskFontSize         float64
	ScaleFontSize        float64
	HeaderFooterFontSize float64
}

// ValidateShortID checks that ShortID is non-empty and matches the required
// format: 3-6 uppercase letters followed by 2-4 digits (e.g. WEB01, ROAD2025).
func (p *Project) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required")
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. WEB01)", p.ShortID)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// FindTask returns the task with the given id.
func (p *Project) FindTask(id int) (*Task, bool) {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i], true
		}
	}
	return nil, false
}

// ChartStart returns the first day covered by the time windows.
func (p *Project) ChartStart() time.Time {
	if len(p.Windows) == 0 {
		return time.Time{}
	}
	start := p.Windows[0].Start
	for _, w := range p.Windows[1:] {
		start = MinDay(start, w.Start)
	}
	return start
}

// ChartFinish returns the last day covered by the time windows.
func (p *Project) ChartFinish() time.Time {
	if len(p.Windows) == 0 {
		return time.Time{}
	}
	finish := p.Windows[0].Finish
	for _, w := range p.Windows[1:] {
		finish = MaxDay(finish, w.Finish)
	}
	return finish
}
