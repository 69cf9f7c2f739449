// Package label positions task and milestone labels relative to their
// shapes: alignment, offsets, ellipsis clipping and leader lines.
package label

import (
	"log/slog"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/draw"
	"github.com/alexanderramin/compactgantt/internal/placement"
)

// Ellipsis is appended to labels clipped to their shape.
const Ellipsis = "…"

type Style struct {
	FontSize         float64
	TextColor        string
	LeaderColor      string
	LeaderWidth      float64
	GlyphWidthFactor float64
	Color            draw.ColorFunc
}

// Labeler builds label instructions for positioned shapes.
type Labeler struct {
	measurer Measurer
	style    Style
	logger   *slog.Logger
}

// New returns a Labeler. A nil measurer always uses the character-count
// estimate.
func New(m Measurer, st Style, logger *slog.Logger) *Labeler {
	if st.Color == nil {
		st.Color = draw.Resolve
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Labeler{measurer: m, style: st, logger: logger}
}

// Width measures text, falling back to the estimate when measurement fails.
func (l *Labeler) Width(text string) float64 {
	if l.measurer != nil {
		w, err := l.measurer.Width(text, l.style.FontSize)
		if err == nil {
			return w
		}
		l.logger.Debug("label measurement failed, using estimate", "text", text, "error", err)
	}
	return Estimate(text, l.style.FontSize, l.style.GlyphWidthFactor)
}

// Place returns the label text and optional leader line for shape. Hidden
// labels, shapes that were not drawn and inside labels on milestones
// produce nothing.
func (l *Labeler) Place(shape placement.TaskShape) []draw.Instruction {
	cfg := shape.Task.Label
	if cfg.Hidden || len(shape.Segments) == 0 {
		return nil
	}
	seg := carrier(cfg.Placement, shape.Segments)
	text := shape.Task.DisplayName()
	txt := draw.Text{
		Content:  text,
		Color:    l.style.Color(cfg.TextColor, l.style.TextColor),
		FontSize: l.style.FontSize,
	}
	cy := seg.Rect.Center().Y

	var leader *draw.Line
	switch cfg.Placement {
	case domain.PlacementToLeft:
		txt.X, txt.Y = seg.X0-cfg.HorizontalOffset*seg.DayWidth, cy
		txt.Anchor, txt.Baseline = draw.AnchorEnd, draw.BaselineMiddle
		leader = l.leader(txt.X, cy, seg.X0, cy)
	case domain.PlacementToRight:
		txt.X, txt.Y = seg.X1+cfg.HorizontalOffset*seg.DayWidth, cy
		txt.Anchor, txt.Baseline = draw.AnchorStart, draw.BaselineMiddle
		leader = l.leader(seg.X1, cy, txt.X, cy)
	case domain.PlacementAbove:
		cx := seg.Rect.Center().X
		txt.X, txt.Y = cx, seg.Rect.Top()-cfg.VerticalOffset*shape.RowHeight
		txt.Anchor, txt.Baseline = aroundCentre(cfg.Alignment), draw.BaselineAlphabetic
		leader = l.leader(cx, txt.Y, cx, seg.Rect.Top())
	case domain.PlacementBelow:
		cx := seg.Rect.Center().X
		txt.X, txt.Y = cx, seg.Rect.Bottom()+cfg.VerticalOffset*shape.RowHeight
		txt.Anchor, txt.Baseline = aroundCentre(cfg.Alignment), draw.BaselineHanging
		leader = l.leader(cx, seg.Rect.Bottom(), cx, txt.Y)
	default:
		if shape.Milestone {
			return nil
		}
		var ok bool
		txt, ok = l.inside(txt, seg, cfg.Alignment)
		if !ok {
			return nil
		}
		return []draw.Instruction{txt}
	}

	if leader == nil || !cfg.ShowLeaderLine {
		return []draw.Instruction{txt}
	}
	return []draw.Instruction{*leader, txt}
}

// PlaceAll labels every shape in order.
func (l *Labeler) PlaceAll(shapes []placement.TaskShape) []draw.Instruction {
	var out []draw.Instruction
	for _, s := range shapes {
		out = append(out, l.Place(s)...)
	}
	return out
}

func (l *Labeler) leader(x1, y1, x2, y2 float64) *draw.Line {
	return &draw.Line{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Stroke: l.style.Color(l.style.LeaderColor, "black"),
		Width:  l.style.LeaderWidth,
	}
}

// inside aligns txt within seg, clipping it with an ellipsis and forcing
// left alignment when it is wider than the shape. ok is false when not
// even the ellipsis fits.
func (l *Labeler) inside(txt draw.Text, seg placement.Segment, align domain.Alignment) (draw.Text, bool) {
	avail := seg.X1 - seg.X0
	txt.Y, txt.Baseline = seg.Rect.Center().Y, draw.BaselineMiddle

	if l.Width(txt.Content) > avail {
		clipped, ok := l.clip(txt.Content, avail)
		if !ok {
			return draw.Text{}, false
		}
		txt.Content = clipped
		txt.X, txt.Anchor = seg.X0, draw.AnchorStart
		return txt, true
	}

	switch align {
	case domain.AlignCentre:
		txt.X, txt.Anchor = (seg.X0+seg.X1)/2, draw.AnchorMiddle
	case domain.AlignRight:
		txt.X, txt.Anchor = seg.X1, draw.AnchorEnd
	default:
		txt.X, txt.Anchor = seg.X0, draw.AnchorStart
	}
	return txt, true
}

// clip finds the longest prefix of text that still fits in avail once the
// ellipsis is appended.
func (l *Labeler) clip(text string, avail float64) (string, bool) {
	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.Width(string(runes[:mid])+Ellipsis) <= avail {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	out := string(runes[:lo]) + Ellipsis
	if l.Width(out) > avail {
		return "", false
	}
	return out, true
}

// aroundCentre anchors an above or below label on the shape's centre line.
func aroundCentre(a domain.Alignment) draw.Anchor {
	switch a {
	case domain.AlignLeft:
		return draw.AnchorStart
	case domain.AlignRight:
		return draw.AnchorEnd
	default:
		return draw.AnchorMiddle
	}
}

// carrier picks the segment of a split shape that carries its label.
func carrier(p domain.Placement, segs []placement.Segment) placement.Segment {
	switch p {
	case domain.PlacementToRight:
		return segs[len(segs)-1]
	case domain.PlacementInside:
		best := segs[0]
		for _, s := range segs[1:] {
			if s.X1-s.X0 > best.X1-best.X0 {
				best = s
			}
		}
		return best
	default:
		return segs[0]
	}
}
