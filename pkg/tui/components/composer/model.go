// Package composer is the journal entry editor: a free-text area plus the
// recording indicator. Text and recording are mutually exclusive per
// submission; the app enforces the precedence, the composer displays it.
package composer

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/moodlog/pkg/tui/events"
	"tableflip.dev/moodlog/pkg/tui/theme"
)

type Model struct {
	input     textarea.Model
	recording bool
	busy      bool
	theme     theme.Theme
}

func New() Model {
	input := textarea.New()
	input.Placeholder = "how was your day?"
	input.CharLimit = 4000
	input.SetHeight(5)
	input.Focus()

	return Model{input: input, theme: theme.Default()}
}

// Value returns the pending text.
func (m Model) Value() string { return m.input.Value() }

// SetValue replaces the pending text.
func (m *Model) SetValue(s string) { m.input.SetValue(s) }

// Reset clears the pending text after a submission hand-off.
func (m *Model) Reset() { m.input.SetValue("") }

// Recording reports whether a recording indicator is shown.
func (m Model) Recording() bool { return m.recording }

// SetRecording flips the recording indicator.
func (m *Model) SetRecording(rec bool) { m.recording = rec }

// SetBusy marks a submission in flight.
func (m *Model) SetBusy(busy bool) { m.busy = busy }

// SetWidth resizes the text area.
func (m *Model) SetWidth(w int) {
	if w > 4 {
		m.input.SetWidth(w - 4)
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+r":
			return m, events.Cmd(events.RecordToggleMsg{})
		case "ctrl+s":
			return m, events.Cmd(events.SubmitRequestMsg{})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	t := m.theme

	status := t.Footer.Help.Render("ctrl+s submit · ctrl+r record")
	if m.recording {
		status = t.Footer.Recording.Render("● recording — ctrl+r to stop & submit")
	}

	return t.Panel.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Panel.Title.Render("today"),
		"",
		m.input.View(),
		"",
		status,
	))
}
