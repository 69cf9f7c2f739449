// Package geom holds the small set of geometry primitives the layout
// engines share.
package geom

type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks the rectangle by the given edge amounts.
func (r Rect) Inset(top, right, bottom, left float64) Rect {
	return Rect{X: r.X + left, Y: r.Y + top, W: r.W - left - right, H: r.H - top - bottom}
}

// SplitTop cuts a band of height h off the top, returning the band and the rest.
func (r Rect) SplitTop(h float64) (Rect, Rect) {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h}, Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
}

// SplitBottom cuts a band of height h off the bottom, returning the rest and the band.
func (r Rect) SplitBottom(h float64) (Rect, Rect) {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H - h}, Rect{X: r.X, Y: r.Bottom() - h, W: r.W, H: h}
}

// SplitColumns divides r left to right by proportions. Each column starts
// at the previous column's right edge and the last column ends exactly at
// r's right edge, so the columns tile r without gaps.
func (r Rect) SplitColumns(proportions []float64) []Rect {
	cols := make([]Rect, len(proportions))
	x := r.X
	for i, p := range proportions {
		w := r.W * p
		if i == len(proportions)-1 {
			w = r.Right() - x
		}
		cols[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w
	}
	return cols
}

// SplitRows stacks bands of the given heights from the top of r.
func (r Rect) SplitRows(heights []float64) []Rect {
	rows := make([]Rect, len(heights))
	y := r.Y
	for i, h := range heights {
		rows[i] = Rect{X: r.X, Y: y, W: r.W, H: h}
		y += h
	}
	return rows
}
