package label

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Measurer reports the rendered width of text in pixels.
type Measurer interface {
	Width(text string, fontSize float64) (float64, error)
}

// FontMeasurer measures text with the Go Regular font. Faces are cached per
// font size; it is safe for concurrent use.
type FontMeasurer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

func NewFontMeasurer() (*FontMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing go regular font: %w", err)
	}
	return &FontMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns the cached face for size, creating it on first use.
func (m *FontMeasurer) Face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face at size %g: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

func (m *FontMeasurer) Width(text string, fontSize float64) (float64, error) {
	if fontSize <= 0 {
		return 0, fmt.Errorf("font size must be positive, got %g", fontSize)
	}
	face, err := m.Face(fontSize)
	if err != nil {
		return 0, err
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64, nil
}

// Close releases every cached face.
func (m *FontMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
	return nil
}

// Estimate approximates a text width from its character count when no
// font metrics are available.
func Estimate(text string, fontSize, glyphWidthFactor float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * glyphWidthFactor
}
