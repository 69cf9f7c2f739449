package export

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/compactgantt/internal/draw"
)

const defaultFontFamily = "Arial, sans-serif"

// WriteSVG encodes instrs as a standalone SVG document.
func WriteSVG(w io.Writer, width, height float64, instrs []draw.Instruction, opts Options) error {
	family := opts.FontFamily
	if family == "" {
		family = defaultFontFamily
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg" font-family="%s">
`, num(width), num(height), num(width), num(height), escapeXML(family))

	for _, in := range instrs {
		switch v := in.(type) {
		case draw.Rect:
			fmt.Fprintf(&svg, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s"%s/>`,
				num(v.X), num(v.Y), num(v.W), num(v.H), paint(v.Fill), paint(v.Stroke), strokeWidth(v.StrokeWidth))
		case draw.Line:
			fmt.Fprintf(&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"%s/>`,
				num(v.X1), num(v.Y1), num(v.X2), num(v.Y2), paint(v.Stroke), strokeWidth(v.Width))
		case draw.Diamond:
			h := v.Size / 2
			fmt.Fprintf(&svg, `<polygon points="%s,%s %s,%s %s,%s %s,%s" fill="%s" stroke="%s"/>`,
				num(v.CX), num(v.CY-h), num(v.CX+h), num(v.CY), num(v.CX), num(v.CY+h), num(v.CX-h), num(v.CY),
				paint(v.Fill), paint(v.Stroke))
		case draw.Text:
			fmt.Fprintf(&svg, `<text x="%s" y="%s" text-anchor="%s" dominant-baseline="%s" font-size="%s" fill="%s">%s</text>`,
				num(v.X), num(v.Y), v.Anchor, baseline(v.Baseline), num(v.FontSize), paint(v.Color), escapeXML(v.Content))
		default:
			return fmt.Errorf("svg: unsupported instruction %T", in)
		}
		svg.WriteByte('\n')
	}
	svg.WriteString("</svg>\n")

	if _, err := io.WriteString(w, svg.String()); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

// num formats a coordinate with at most three decimals and no trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

func paint(c string) string {
	if c == "" {
		return draw.ColorNone
	}
	return escapeXML(c)
}

func strokeWidth(w float64) string {
	if w <= 0 {
		return ""
	}
	return fmt.Sprintf(` stroke-width="%s"`, num(w))
}

func baseline(b draw.Baseline) string {
	switch b {
	case draw.BaselineMiddle:
		return "middle"
	case draw.BaselineHanging:
		return "hanging"
	default:
		return "alphabetic"
	}
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
