// Package timeline derives a chart-ready series from history entries. It is
// a pure function of the history store's state: emotion is encoded by point
// color only, the vertical position is fixed.
package timeline

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/emotion"
)

// Point is one timeline dot.
type Point struct {
	Date    string
	Emotion string
	Color   string
}

// Points maps history entries to timeline points in order. Unrecognized
// emotion labels get the neutral fallback color rather than an error.
func Points(entries []api.HistoryEntry) []Point {
	out := make([]Point, 0, len(entries))
	for _, e := range entries {
		out = append(out, Point{
			Date:    e.Date,
			Emotion: e.Emotion,
			Color:   emotion.ColorFor(emotion.Label(e.Emotion)),
		})
	}
	return out
}

const dot = "●"

// Render draws the points as a single color-coded dot row, at most width
// dots wide (keeping the most recent when trimming). Zero or negative
// width means unbounded.
func Render(points []Point, width int) string {
	if len(points) == 0 {
		return ""
	}
	if width > 0 && len(points) > width {
		points = points[len(points)-width:]
	}
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(dot))
	}
	return b.String()
}

// Legend renders the span covered by the points ("2026-06-01 … 2026-08-30").
func Legend(points []Point) string {
	if len(points) == 0 {
		return "no entries yet"
	}
	first := points[0].Date
	last := points[len(points)-1].Date
	if first == last {
		return first
	}
	return first + " … " + last
}
