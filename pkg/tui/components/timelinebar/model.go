// Package timelinebar renders the 90-day history strip. It is a pure view
// over the entries it is handed; it never mutates the history store.
package timelinebar

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/timeline"
	"tableflip.dev/moodlog/pkg/tui/theme"
)

type Model struct {
	entries []api.HistoryEntry
	width   int
	theme   theme.Theme
}

func New() Model {
	return Model{theme: theme.Default(), width: 60}
}

// SetEntries replaces the rendered sequence; recomputed on every history
// change.
func (m *Model) SetEntries(entries []api.HistoryEntry) {
	m.entries = entries
}

// Entries returns the sequence currently rendered.
func (m Model) Entries() []api.HistoryEntry {
	return m.entries
}

// SetWidth bounds the number of dots shown (most recent kept).
func (m *Model) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

func (m Model) View() string {
	t := m.theme

	points := timeline.Points(m.entries)
	row := timeline.Render(points, m.width/2)
	if row == "" {
		row = t.Footer.Status.Render("no entries yet")
	}

	return t.Panel.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Panel.Title.Render("last 90 days"),
		"",
		row,
		t.Footer.Status.Render(timeline.Legend(points)),
	))
}
