package export

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/compactgantt/internal/draw"
)

func sample() []draw.Instruction {
	return []draw.Instruction{
		draw.Rect{X: 0, Y: 0, W: 100, H: 50, Fill: "white", Stroke: draw.ColorNone},
		draw.Rect{X: 10, Y: 10, W: 30, H: 20, Fill: "#ff0000", Stroke: "black", StrokeWidth: 1},
		draw.Line{X1: 40, Y1: 20, X2: 60, Y2: 20, Stroke: "black", Width: 1},
		draw.Diamond{CX: 80, CY: 20, Size: 10, Fill: "blue", Stroke: "black"},
		draw.Text{X: 60.5, Y: 40, Anchor: draw.AnchorStart, Baseline: draw.BaselineMiddle, Content: "R&D <v2>", Color: "black", FontSize: 10},
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"chart.svg", FormatSVG, false},
		{"out/Chart.PNG", FormatPNG, false},
		{"chart.jpg", FormatJPEG, false},
		{"chart.jpeg", FormatJPEG, false},
		{"chart.pdf", "", true},
		{"chart", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, 100, 50, sample(), Options{FontFamily: "Helvetica"}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"`))
	assert.Contains(t, out, `<svg width="100" height="50" viewBox="0 0 100 50"`)
	assert.Contains(t, out, `font-family="Helvetica"`)
	assert.Contains(t, out, `<rect x="10" y="10" width="30" height="20" fill="#ff0000" stroke="black" stroke-width="1"/>`)
	assert.Contains(t, out, `<line x1="40" y1="20" x2="60" y2="20" stroke="black" stroke-width="1"/>`)
	assert.Contains(t, out, `<polygon points="80,15 85,20 80,25 75,20" fill="blue" stroke="black"/>`)
	assert.Contains(t, out, `x="60.5"`)
	assert.Contains(t, out, `dominant-baseline="middle"`)
	assert.Contains(t, out, `>R&amp;D &lt;v2&gt;</text>`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestWriteSVG_RoundsCoordinates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, 10, 10, []draw.Instruction{
		draw.Line{X1: 1.0 / 3, Y1: 0, X2: 2, Y2: 0, Stroke: "black", Width: 1},
	}, Options{}))
	assert.Contains(t, buf.String(), `x1="0.333"`)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, 100, 50, sample(), Options{Scale: 2}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	r, g, b, _ := img.At(50, 40).RGBA()
	assert.Equal(t, uint32(0xffff), r, "task rect is red")
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)

	r, g, b, _ = img.At(2, 2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "background is white")

	_, _, b, _ = img.At(160, 40).RGBA()
	assert.Equal(t, uint32(0xffff), b, "diamond centre is blue")
}

func TestWriteJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJPEG, 100, 50, sample(), Options{JPEGQuality: 80}))

	img, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
}

func TestRasterize_EmptyCanvas(t *testing.T) {
	_, err := Rasterize(0, 10, nil, Options{})
	assert.Error(t, err)
}
