package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// surface paints text onto one background color. lipgloss resets the background
// after every styled segment, so spaces between words are painted separately.
// See https://github.com/charmbracelet/lipgloss/discussions/78.
type surface struct {
	color lipgloss.Color
	fill  lipgloss.Style
}

func newSurface(color string) surface {
	c := lipgloss.Color(color)
	return surface{color: c, fill: lipgloss.NewStyle().Background(c)}
}

// paint renders text in style on the surface color.
func (s surface) paint(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(s.color)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, s.gap(1))
}

// gap returns n painted spaces.
func (s surface) gap(n int) string {
	if n <= 0 {
		return ""
	}
	return s.fill.Render(strings.Repeat(" ", n))
}

// hint renders a "key:desc" command bar entry.
func (s surface) hint(key, desc string, keyStyle, descStyle lipgloss.Style) string {
	return s.paint(key, keyStyle) + s.fill.Render(":") + s.paint(desc, descStyle)
}

// join places painted parts next to each other with a painted gap of width n.
func (s surface) join(parts []string, n int) string {
	return strings.Join(parts, s.gap(n))
}
