// Package export serializes draw instruction lists to SVG, PNG and JPEG.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/compactgantt/internal/draw"
)

type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ParseFormat accepts svg, png, jpeg and jpg in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want svg, png or jpeg)", s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("output path %q has no extension", path)
	}
	return ParseFormat(ext)
}

// Options configures every serializer; each uses the fields it needs.
type Options struct {
	FontFamily  string
	Scale       float64
	JPEGQuality int
}

// Write encodes instrs in format f onto a canvas of the given size.
func Write(w io.Writer, f Format, width, height float64, instrs []draw.Instruction, opts Options) error {
	switch f {
	case FormatSVG:
		return WriteSVG(w, width, height, instrs, opts)
	case FormatPNG:
		return WritePNG(w, width, height, instrs, opts)
	case FormatJPEG:
		return WriteJPEG(w, width, height, instrs, opts)
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}
