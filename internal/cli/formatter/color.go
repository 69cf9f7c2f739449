// Package formatter renders CLI output with lipgloss styles.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
	borderColor lipgloss.TerminalColor
)

func init() { setStyles(true) }

// DisableColor drops colours but keeps bold and borders. Use it when stdout
// is not a terminal.
func DisableColor() { setStyles(false) }

func setStyles(color bool) {
	fg := func(c lipgloss.Color) lipgloss.Style {
		if !color {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(c)
	}
	StyleGreen = fg(ColorGreen)
	StyleYellow = fg(ColorYellow)
	StyleRed = fg(ColorRed)
	StyleBlue = fg(ColorBlue)
	StyleDim = fg(ColorDim)
	StyleFg = fg(ColorFg)
	StyleHeader = fg(ColorHeader).Bold(true)
	StyleBold = fg(ColorFg).Bold(true)
	borderColor = lipgloss.NoColor{}
	if color {
		borderColor = ColorDim
	}
}

// Header renders an upper-case section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// FormatBadge colours an output format name: vector output blue, raster
// output yellow.
func FormatBadge(format string) string {
	label := strings.ToUpper(format)
	if strings.EqualFold(format, "svg") {
		return StyleBlue.Render(label)
	}
	return StyleYellow.Render(label)
}

// Success and Failure prefix a message with a coloured marker.
func Success(msg string) string { return StyleGreen.Render("✓") + " " + msg }
func Failure(msg string) string { return StyleRed.Render("✗") + " " + msg }
