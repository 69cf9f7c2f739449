// Package draw defines the engine's output: an ordered list of drawing
// instructions with fully resolved coordinates and styles.
package draw

type Kind string

const (
	KindRect    Kind = "rect"
	KindLine    Kind = "line"
	KindDiamond Kind = "diamond"
	KindText    Kind = "text"
)

// Instruction is one of Rect, Line, Diamond or Text.
type Instruction interface {
	Kind() Kind
}

type Rect struct {
	X           float64
	Y           float64
	W           float64
	H           float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

type Line struct {
	X1     float64
	Y1     float64
	X2     float64
	Y2     float64
	Stroke string
	Width  float64
}

// Diamond is a square rotated 45 degrees; Size is the full width and height.
type Diamond struct {
	CX     float64
	CY     float64
	Size   float64
	Fill   string
	Stroke string
}

type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Baseline positions text vertically relative to Y: Middle centres it,
// Hanging puts its top at Y, Alphabetic puts its bottom at Y.
type Baseline string

const (
	BaselineMiddle     Baseline = "middle"
	BaselineHanging    Baseline = "hanging"
	BaselineAlphabetic Baseline = "alphabetic"
)

type Text struct {
	X        float64
	Y        float64
	Anchor   Anchor
	Baseline Baseline
	Content  string
	Color    string
	FontSize float64
}

func (Rect) Kind() Kind    { return KindRect }
func (Line) Kind() Kind    { return KindLine }
func (Diamond) Kind() Kind { return KindDiamond }
func (Text) Kind() Kind    { return KindText }

// Horizontal reports whether the line runs parallel to the x axis.
func (l Line) Horizontal() bool { return l.Y1 == l.Y2 }

// Vertical reports whether the line runs parallel to the y axis.
func (l Line) Vertical() bool { return l.X1 == l.X2 }

// List is an ordered instruction sequence; later entries paint over earlier ones.
type List []Instruction

// Count returns how many instructions of kind k the list holds.
func (l List) Count(k Kind) int {
	n := 0
	for _, in := range l {
		if in.Kind() == k {
			n++
		}
	}
	return n
}

// Texts returns every Text instruction in order.
func (l List) Texts() []Text {
	var out []Text
	for _, in := range l {
		if t, ok := in.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}
