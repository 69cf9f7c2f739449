package draw

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorNone disables a fill or stroke.
const ColorNone = "none"

// ResolveColor normalises a CSS colour name or #rgb/#rrggbb hex string.
// Unknown or blank values resolve to fallback and report false.
func ResolveColor(s, fallback string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(s))
	if c == "" {
		return fallback, false
	}
	if c == ColorNone {
		return c, true
	}
	if _, ok := parseHex(c); ok {
		return c, true
	}
	if _, ok := colornames.Map[c]; ok {
		return c, true
	}
	return fallback, false
}

// ColorFunc resolves an entity colour against a fallback. Layout engines
// take one so the caller decides how fallbacks are reported.
type ColorFunc func(s, fallback string) string

// Resolve is the ColorFunc that falls back silently.
func Resolve(s, fallback string) string {
	c, _ := ResolveColor(s, fallback)
	return c
}

// RGBA converts a resolved colour string to an image colour. "none" and
// unknown values are fully transparent.
func RGBA(s string) color.RGBA {
	c := strings.ToLower(strings.TrimSpace(s))
	if rgba, ok := parseHex(c); ok {
		return rgba
	}
	if rgba, ok := colornames.Map[c]; ok {
		return rgba
	}
	return color.RGBA{}
}

func parseHex(s string) (color.RGBA, bool) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
