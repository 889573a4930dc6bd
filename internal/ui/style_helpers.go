package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle paints text runs onto a single background color. lipgloss
// resets colors between adjacent Render calls, which leaves unpainted
// gaps in what should read as one solid band, so every helper here
// styles the gaps along with the words.
// See https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	fill  lipgloss.Style // background-only style for gaps and padding
	space string         // cached painted space
}

// NewBgStyle builds a painter for the given background color.
func NewBgStyle(bgColor string) BgStyle {
	fill := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	return BgStyle{
		bg:    lipgloss.Color(bgColor),
		fill:  fill,
		space: fill.Render(" "),
	}
}

// Render styles text with the background applied to every character,
// spaces included. Each run between spaces is styled on its own and the
// spaces come from the painted cache, so consecutive spaces keep their
// width.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	painted := style.Background(b.bg)
	var out strings.Builder
	for len(text) > 0 {
		i := strings.IndexByte(text, ' ')
		if i < 0 {
			out.WriteString(painted.Render(text))
			break
		}
		if i > 0 {
			out.WriteString(painted.Render(text[:i]))
		}
		out.WriteString(b.space)
		text = text[i+1:]
	}
	return out.String()
}

// Space returns one painted space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n painted spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Sep paints a separator literal.
func (b BgStyle) Sep(sep string) string {
	return b.fill.Render(sep)
}

// Join joins parts with a painted separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}

// FillLine pads content out to width with the background color.
func (b BgStyle) FillLine(content string, width int) string {
	return b.fill.Width(width).Render(content)
}
