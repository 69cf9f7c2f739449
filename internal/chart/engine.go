// Package chart runs the layout engines in order and flattens their output
// into one draw instruction list per render.
package chart

import (
	"fmt"
	"log/slog"

	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/draw"
	"github.com/alexanderramin/compactgantt/internal/frame"
	"github.com/alexanderramin/compactgantt/internal/label"
	"github.com/alexanderramin/compactgantt/internal/placement"
	"github.com/alexanderramin/compactgantt/internal/swimlane"
)

// Engine renders project snapshots. It holds no per-render state and may be
// shared between goroutines.
type Engine struct {
	cfg      config.EngineConfig
	logger   *slog.Logger
	measurer label.Measurer
}

type Option func(*Engine)

// WithLogger sets the logger that receives debug records for fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMeasurer replaces the font-based text measurement. A nil measurer
// makes every label use the character-count estimate.
func WithMeasurer(m label.Measurer) Option {
	return func(e *Engine) { e.measurer = m }
}

func NewEngine(cfg config.EngineConfig, opts ...Option) *Engine {
	e := &Engine{cfg: cfg, logger: slog.New(slog.DiscardHandler)}
	if m, err := label.NewFontMeasurer(); err == nil {
		e.measurer = m
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.EngineConfig { return e.cfg }

// Result is delivered to RenderAsync callbacks.
type Result struct {
	Instructions []draw.Instruction
	Err          error
}

// RenderAsync renders p on a new goroutine and calls done exactly once with
// the complete instruction list or the error that stopped the render.
func (e *Engine) RenderAsync(p *domain.Project, done func(Result)) {
	go func() {
		instrs, err := e.Render(p)
		done(Result{Instructions: instrs, Err: err})
	}()
}

// Render lays out p and returns its draw instructions in paint order. On
// error no instructions are returned.
func (e *Engine) Render(p *domain.Project) ([]draw.Instruction, error) {
	if p == nil {
		return nil, fmt.Errorf("render: nil project")
	}
	r := &render{cfg: e.cfg, project: p, logger: e.logger.With("project", p.DisplayID())}
	r.color = r.resolveColor

	layout, err := frame.Compute(p, e.cfg)
	if err != nil {
		return nil, err
	}
	lanes, err := swimlane.Layout(p.Swimlanes, layout)
	if err != nil {
		return nil, err
	}
	placer := placement.New(layout, e.cfg.TaskHeightFactor)
	shapes, err := placer.Tasks(p.Tasks)
	if err != nil {
		return nil, err
	}
	links, err := placement.Connect(p.Connectors, shapes)
	if err != nil {
		return nil, err
	}
	if skipped := len(p.Connectors) - len(links); skipped > 0 {
		r.logger.Debug("connectors skipped, endpoint not drawn", "count", skipped)
	}

	chrome := r.chromeStyle()
	r.emit(layout.Background(chrome))
	r.emit(layout.HeaderFooter(p.Frame.HeaderText, p.Frame.FooterText, chrome)...)
	r.emit(swimlane.Instructions(lanes, r.swimlaneStyle())...)

	bands := r.scaleBands(layout)
	bandStyle := r.bandStyle()
	for _, b := range bands {
		r.emit(b.Instructions(bandStyle)...)
	}
	r.gridlines(layout, bands)

	st := r.placementStyle()
	for _, c := range p.Curtains {
		segs, err := placer.Curtain(c)
		if err != nil {
			return nil, err
		}
		r.emit(placement.CurtainInstructions(c.Color, segs, st)...)
	}
	r.emit(placement.ShapeInstructions(shapes, st)...)
	for _, pipe := range p.Pipes {
		mark, ok := placer.Pipe(pipe)
		if !ok {
			r.logger.Debug("pipe outside every time window, not rendered", "pipe_id", pipe.ID, "date", pipe.Date.Format(domain.DateLayout))
			continue
		}
		r.emit(placement.PipeInstruction(mark, st))
	}
	r.emit(placement.LinkInstructions(links, st)...)

	labeler := label.New(e.measurer, r.labelStyle(), r.logger)
	r.emit(labeler.PlaceAll(shapes)...)
	r.textBoxes()
	r.emit(layout.Border(chrome))

	return r.out, nil
}
