package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	imgdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/alexanderramin/compactgantt/internal/draw"
	"github.com/alexanderramin/compactgantt/internal/label"
)

// WritePNG rasterizes instrs and encodes them as PNG.
func WritePNG(w io.Writer, width, height float64, instrs []draw.Instruction, opts Options) error {
	img, err := Rasterize(width, height, instrs, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WriteJPEG rasterizes instrs and encodes them as JPEG.
func WriteJPEG(w io.Writer, width, height float64, instrs []draw.Instruction, opts Options) error {
	img, err := Rasterize(width, height, instrs, opts)
	if err != nil {
		return err
	}
	quality := opts.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encoding jpeg: %w", err)
	}
	return nil
}

type canvas struct {
	img   *image.RGBA
	scale float64
	fonts *label.FontMeasurer
}

// Rasterize paints instrs onto an RGBA image. Text uses the Go Regular font.
func Rasterize(width, height float64, instrs []draw.Instruction, opts Options) (*image.RGBA, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := int(math.Ceil(width*scale)), int(math.Ceil(height*scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster size %dx%d is empty", w, h)
	}
	fonts, err := label.NewFontMeasurer()
	if err != nil {
		return nil, err
	}
	defer fonts.Close()

	c := &canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), scale: scale, fonts: fonts}
	for _, in := range instrs {
		switch v := in.(type) {
		case draw.Rect:
			c.rect(v)
		case draw.Line:
			c.line(v.X1, v.Y1, v.X2, v.Y2, v.Width, v.Stroke)
		case draw.Diamond:
			c.diamond(v)
		case draw.Text:
			if err := c.text(v); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("raster: unsupported instruction %T", in)
		}
	}
	return c.img, nil
}

func (c *canvas) px(v float64) int { return int(math.Round(v * c.scale)) }

func (c *canvas) fill(r image.Rectangle, col string) {
	rgba := draw.RGBA(col)
	if rgba.A == 0 {
		return
	}
	imgdraw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(rgba), image.Point{}, imgdraw.Over)
}

func (c *canvas) rect(r draw.Rect) {
	x0, y0, x1, y1 := c.px(r.X), c.px(r.Y), c.px(r.X+r.W), c.px(r.Y+r.H)
	c.fill(image.Rect(x0, y0, x1, y1), r.Fill)
	if r.StrokeWidth <= 0 && r.Stroke != "" {
		r.StrokeWidth = 1
	}
	if r.StrokeWidth > 0 {
		c.line(r.X, r.Y, r.X+r.W, r.Y, r.StrokeWidth, r.Stroke)
		c.line(r.X, r.Y+r.H, r.X+r.W, r.Y+r.H, r.StrokeWidth, r.Stroke)
		c.line(r.X, r.Y, r.X, r.Y+r.H, r.StrokeWidth, r.Stroke)
		c.line(r.X+r.W, r.Y, r.X+r.W, r.Y+r.H, r.StrokeWidth, r.Stroke)
	}
}

// line stamps square pens along the segment.
func (c *canvas) line(x1, y1, x2, y2, width float64, col string) {
	pen := max(1, c.px(width))
	half := pen / 2
	ax, ay, bx, by := c.px(x1), c.px(y1), c.px(x2), c.px(y2)
	if ay == by || ax == bx {
		r := image.Rect(min(ax, bx)-half, min(ay, by)-half, max(ax, bx)-half+pen, max(ay, by)-half+pen)
		c.fill(r, col)
		return
	}
	steps := max(abs(bx-ax), abs(by-ay))
	for i := 0; i <= steps; i++ {
		x := ax + (bx-ax)*i/steps
		y := ay + (by-ay)*i/steps
		c.fill(image.Rect(x-half, y-half, x-half+pen, y-half+pen), col)
	}
}

func (c *canvas) diamond(d draw.Diamond) {
	cx, cy := d.CX*c.scale, d.CY*c.scale
	half := d.Size * c.scale / 2
	for y := int(math.Floor(cy - half)); y <= int(math.Ceil(cy+half)); y++ {
		span := half - math.Abs(float64(y)+0.5-cy)
		if span <= 0 {
			continue
		}
		c.fill(image.Rect(int(math.Round(cx-span)), y, int(math.Round(cx+span)), y+1), d.Fill)
	}
}

func (c *canvas) text(t draw.Text) error {
	rgba := draw.RGBA(t.Color)
	if rgba.A == 0 || t.Content == "" {
		return nil
	}
	face, err := c.fonts.Face(t.FontSize * c.scale)
	if err != nil {
		return err
	}
	width := font.MeasureString(face, t.Content)
	x := fixed.I(c.px(t.X))
	switch t.Anchor {
	case draw.AnchorMiddle:
		x -= width / 2
	case draw.AnchorEnd:
		x -= width
	}
	m := face.Metrics()
	y := fixed.I(c.px(t.Y))
	switch t.Baseline {
	case draw.BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case draw.BaselineHanging:
		y += m.Ascent
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(rgba),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(t.Content)
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
