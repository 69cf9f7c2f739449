package placement

import "github.com/alexanderramin/compactgantt/internal/draw"

// Style carries the fallback colours and stroke widths of placed entities.
type Style struct {
	TaskFill       string
	MilestoneFill  string
	ShapeStroke    string
	Curtain        string
	Pipe           string
	Connector      string
	PipeWidth      float64
	ConnectorWidth float64
	Color          draw.ColorFunc
}

func (st Style) resolve(s, fallback string) string {
	if st.Color == nil {
		return draw.Resolve(s, fallback)
	}
	return st.Color(s, fallback)
}

// ShapeInstructions draws every task segment as a rectangle and every
// milestone as a diamond.
func ShapeInstructions(shapes []TaskShape, st Style) []draw.Instruction {
	var out []draw.Instruction
	for _, s := range shapes {
		if s.Milestone {
			for _, seg := range s.Segments {
				c := seg.Rect.Center()
				out = append(out, draw.Diamond{
					CX: c.X, CY: c.Y, Size: seg.Rect.W,
					Fill:   st.resolve(s.Task.FillColor, st.MilestoneFill),
					Stroke: st.ShapeStroke,
				})
			}
			continue
		}
		fill := st.resolve(s.Task.FillColor, st.TaskFill)
		for _, seg := range s.Segments {
			r := seg.Rect
			out = append(out, draw.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H, Fill: fill, Stroke: st.ShapeStroke, StrokeWidth: 1})
		}
	}
	return out
}

// CurtainInstructions shades each curtain segment.
func CurtainInstructions(color string, segs []Segment, st Style) []draw.Instruction {
	fill := st.resolve(color, st.Curtain)
	out := make([]draw.Instruction, 0, len(segs))
	for _, seg := range segs {
		r := seg.Rect
		out = append(out, draw.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H, Fill: fill, Stroke: draw.ColorNone})
	}
	return out
}

func PipeInstruction(m PipeMark, st Style) draw.Instruction {
	return draw.Line{X1: m.X, Y1: m.Top, X2: m.X, Y2: m.Bottom, Stroke: st.resolve(m.Pipe.Color, st.Pipe), Width: st.PipeWidth}
}

func LinkInstructions(links []Link, st Style) []draw.Instruction {
	out := make([]draw.Instruction, 0, len(links))
	for _, l := range links {
		out = append(out, draw.Line{
			X1: l.From.X, Y1: l.From.Y, X2: l.To.X, Y2: l.To.Y,
			Stroke: st.resolve(l.Connector.Color, st.Connector), Width: st.ConnectorWidth,
		})
	}
	return out
}
