package chart

import (
	"log/slog"

	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/draw"
	"github.com/alexanderramin/compactgantt/internal/frame"
	"github.com/alexanderramin/compactgantt/internal/label"
	"github.com/alexanderramin/compactgantt/internal/placement"
	"github.com/alexanderramin/compactgantt/internal/swimlane"
	"github.com/alexanderramin/compactgantt/internal/timescale"
)

// render is the state of one Render call.
type render struct {
	cfg     config.EngineConfig
	project *domain.Project
	logger  *slog.Logger
	color   draw.ColorFunc
	out     []draw.Instruction
}

func (r *render) emit(instrs ...draw.Instruction) {
	r.out = append(r.out, instrs...)
}

func (r *render) resolveColor(s, fallback string) string {
	c, ok := draw.ResolveColor(s, fallback)
	if !ok && s != "" {
		r.logger.Debug("unknown colour, using default", "colour", s, "default", fallback)
	}
	return c
}

func (r *render) taskFontSize() float64 {
	return domain.Coalesce(r.project.Typography.TaskFontSize, r.cfg.Fonts.TaskSize)
}

func (r *render) chromeStyle() frame.ChromeStyle {
	c := r.cfg.Colors
	return frame.ChromeStyle{
		Background:  r.color(c.Background, "white"),
		BandFill:    r.color(c.Band, "lightgrey"),
		BandStroke:  r.color(c.BandStroke, "grey"),
		TextColor:   r.color(c.Text, "black"),
		FontSize:    domain.Coalesce(r.project.Typography.HeaderFooterFontSize, r.cfg.Fonts.HeaderFooterSize),
		Border:      r.color(c.FrameBorder, "black"),
		BorderWidth: r.cfg.FrameBorderWidth,
	}
}

func (r *render) swimlaneStyle() swimlane.Style {
	return swimlane.Style{
		DefaultFill: r.color(r.cfg.Colors.Swimlane, "#f2f2f2"),
		TextColor:   r.color(r.cfg.Colors.Text, "black"),
		FontSize:    r.cfg.Fonts.SwimlaneSize,
		Padding:     r.cfg.SwimlanePadding,
		Color:       r.color,
	}
}

func (r *render) bandStyle() timescale.BandStyle {
	c := r.cfg.Colors
	return timescale.BandStyle{
		Fill:        r.color(c.Band, "lightgrey"),
		Stroke:      r.color(c.BandStroke, "grey"),
		TextColor:   r.color(c.Text, "black"),
		FontSize:    domain.Coalesce(r.project.Typography.ScaleFontSize, r.cfg.Fonts.ScaleSize),
		StrokeWidth: 1,
	}
}

func (r *render) placementStyle() placement.Style {
	c := r.cfg.Colors
	return placement.Style{
		TaskFill:       r.color(c.TaskFill, "#4a90d9"),
		MilestoneFill:  r.color(c.MilestoneFill, "#d0021b"),
		ShapeStroke:    r.color(c.ShapeStroke, "black"),
		Curtain:        r.color(c.Curtain, "#f5c6cb"),
		Pipe:           r.color(c.Pipe, "red"),
		Connector:      r.color(c.Connector, "black"),
		PipeWidth:      r.cfg.PipeWidth,
		ConnectorWidth: r.cfg.ConnectorWidth,
		Color:          r.color,
	}
}

func (r *render) labelStyle() label.Style {
	return label.Style{
		FontSize:         r.taskFontSize(),
		TextColor:        r.color(r.cfg.Colors.Text, "black"),
		LeaderColor:      r.color(r.cfg.Colors.Leader, "black"),
		LeaderWidth:      r.cfg.LeaderLineWidth,
		GlyphWidthFactor: r.cfg.Fonts.GlyphWidthFactor,
		Color:            r.color,
	}
}

// scaleBands lays out every scale of every window, window by window.
func (r *render) scaleBands(l *frame.Layout) []timescale.Band {
	var bands []timescale.Band
	for _, w := range l.Windows {
		for i, s := range w.Model.Scales {
			bands = append(bands, timescale.LayoutBand(w.Mapper, s, w.ScaleBands[i], r.cfg.Thresholds))
		}
	}
	return bands
}

// gridlines draws vertical lines through the row band at the separators of
// every scale with gridlines enabled, then the horizontal row lines.
func (r *render) gridlines(l *frame.Layout, bands []timescale.Band) {
	stroke := r.color(r.cfg.Colors.Gridline, "#d3d3d3")
	band := l.RowBand()
	for _, b := range bands {
		if !b.Scale.ShowGridlines {
			continue
		}
		width := r.gridWeight(b.Scale.Granularity)
		for _, x := range b.Separators() {
			r.emit(draw.Line{X1: x, Y1: band.Top(), X2: x, Y2: band.Bottom(), Stroke: stroke, Width: width})
		}
	}
	if r.project.Frame.HorizontalGridlines {
		r.emit(l.RowLines(stroke, r.cfg.GridWeights.Day)...)
	}
}

func (r *render) gridWeight(g domain.Granularity) float64 {
	w := r.cfg.GridWeights
	switch g {
	case domain.GranularityYear:
		return w.Year
	case domain.GranularityMonth:
		return w.Month
	case domain.GranularityWeek:
		return w.Week
	default:
		return w.Day
	}
}

func (r *render) textBoxes() {
	fallback := r.color(r.cfg.Colors.Text, "black")
	for _, tb := range r.project.TextBoxes {
		if tb.Text == "" {
			continue
		}
		r.emit(draw.Text{
			X: tb.X, Y: tb.Y,
			Anchor: draw.AnchorStart, Baseline: draw.BaselineHanging,
			Content: tb.Text, Color: r.color(tb.Color, fallback), FontSize: r.taskFontSize(),
		})
	}
}
