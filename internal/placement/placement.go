// Package placement positions tasks, milestones, curtains, pipes and
// connectors inside the row band, splitting anything that crosses a time
// window boundary into one segment per window.
package placement

import (
	"fmt"
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/frame"
	"github.com/alexanderramin/compactgantt/internal/geom"
)

// Segment is the part of an entity that falls inside one window. X0 and X1
// are the mapped edges; neighbouring segments share them exactly.
type Segment struct {
	Window   int
	Start    time.Time
	Finish   time.Time
	X0       float64
	X1       float64
	Rect     geom.Rect
	DayWidth float64
}

// TaskShape is a positioned task or milestone. A milestone has at most one
// segment whose Rect is the bounding square of its diamond. A task outside
// every window has no segments and is not drawn.
type TaskShape struct {
	Task      domain.Task
	Milestone bool
	Segments  []Segment
	RowHeight float64
}

// Primary returns the first segment, used to anchor connectors.
func (s TaskShape) Primary() (Segment, bool) {
	if len(s.Segments) == 0 {
		return Segment{}, false
	}
	return s.Segments[0], true
}

// Placer converts entities to geometry against a computed frame.
type Placer struct {
	layout       *frame.Layout
	heightFactor float64
}

func New(l *frame.Layout, heightFactor float64) *Placer {
	return &Placer{layout: l, heightFactor: heightFactor}
}

// Task positions t. Finish before start and rows outside the row band are
// rejected with a ValidationError.
func (p *Placer) Task(t domain.Task) (TaskShape, error) {
	if err := domain.ValidateTask(t, p.layout.NumRows); err != nil {
		return TaskShape{}, err
	}
	rowH := p.layout.RowHeight
	h := rowH * p.heightFactor
	y := p.layout.RowTop(t.Row) + (rowH-h)/2
	shape := TaskShape{Task: t, Milestone: t.Milestone(), RowHeight: rowH}

	if shape.Milestone {
		d := domain.Day(t.Start)
		for i, w := range p.layout.Windows {
			if !w.Model.Contains(d) {
				continue
			}
			// Milestones mark the close of their day.
			cx := w.Mapper.EndX(d)
			shape.Segments = []Segment{{
				Window: i, Start: d, Finish: d,
				X0: cx - h/2, X1: cx + h/2,
				Rect:     geom.Rect{X: cx - h/2, Y: y, W: h, H: h},
				DayWidth: w.Mapper.DayWidth(),
			}}
			break
		}
		return shape, nil
	}

	shape.Segments = p.split(t.Start, t.Finish, func(w frame.Window) (float64, float64) { return y, h })
	return shape, nil
}

// Tasks positions every task in input order.
func (p *Placer) Tasks(tasks []domain.Task) ([]TaskShape, error) {
	out := make([]TaskShape, 0, len(tasks))
	for _, t := range tasks {
		s, err := p.Task(t)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Curtain returns one segment per window the curtain overlaps, each spanning
// the full height of that window's row band.
func (p *Placer) Curtain(c domain.Curtain) ([]Segment, error) {
	if c.To.Before(c.From) {
		return nil, &domain.ValidationError{
			Field:  fmt.Sprintf("curtains[id=%d]", c.ID),
			Reason: fmt.Sprintf("to %s is before from %s", c.To.Format(domain.DateLayout), c.From.Format(domain.DateLayout)),
		}
	}
	return p.split(c.From, c.To, func(w frame.Window) (float64, float64) { return w.RowBand.Y, w.RowBand.H }), nil
}

// PipeMark is a pipe positioned as a vertical line at the start of its day.
type PipeMark struct {
	Pipe   domain.Pipe
	X      float64
	Top    float64
	Bottom float64
}

// Pipe places pp in the window containing its date. ok is false when no
// window contains it.
func (p *Placer) Pipe(pp domain.Pipe) (PipeMark, bool) {
	w, ok := p.layout.WindowAt(pp.Date)
	if !ok {
		return PipeMark{}, false
	}
	return PipeMark{Pipe: pp, X: w.Mapper.X(pp.Date), Top: w.RowBand.Top(), Bottom: w.RowBand.Bottom()}, true
}

func (p *Placer) split(start, finish time.Time, vertical func(frame.Window) (float64, float64)) []Segment {
	var segs []Segment
	for i, w := range p.layout.Windows {
		s, f, ok := w.Mapper.Clip(start, finish)
		if !ok {
			continue
		}
		x0, x1 := w.Mapper.Span(s, f)
		y, h := vertical(w)
		segs = append(segs, Segment{
			Window: i, Start: s, Finish: f,
			X0: x0, X1: x1,
			Rect:     geom.Rect{X: x0, Y: y, W: x1 - x0, H: h},
			DayWidth: w.Mapper.DayWidth(),
		})
	}
	return segs
}
