package composer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/moodlog/pkg/tui/events"
)

func TestCtrlSRequestsSubmission(t *testing.T) {
	m := New()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(events.SubmitRequestMsg); !ok {
		t.Fatalf("expected SubmitRequestMsg, got %T", cmd())
	}
}

func TestCtrlRTogglesRecording(t *testing.T) {
	m := New()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(events.RecordToggleMsg); !ok {
		t.Fatalf("expected RecordToggleMsg, got %T", cmd())
	}
}

func TestTypingReachesValue(t *testing.T) {
	m := New()
	for _, r := range "rough day" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.Value() != "rough day" {
		t.Fatalf("unexpected value %q", m.Value())
	}
	m.Reset()
	if m.Value() != "" {
		t.Fatalf("reset must clear the value, got %q", m.Value())
	}
}

func TestRecordingIndicator(t *testing.T) {
	m := New()
	m.SetRecording(true)
	if !strings.Contains(m.View(), "recording") {
		t.Fatal("recording state must be visible")
	}
	m.SetRecording(false)
	if strings.Contains(m.View(), "● recording") {
		t.Fatal("indicator must disappear when not recording")
	}
}
