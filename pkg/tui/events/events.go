// Package events defines the cross-component messages of the Bubble Tea UI.
// Network responses arrive as these messages in completion order; the app
// model applies them single-threaded.
package events

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"tableflip.dev/moodlog/pkg/api"
)

// AuthMode selects between the two faces of the auth form. Display state
// only, never session state.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeSignup
)

func (m AuthMode) String() string {
	if m == ModeSignup {
		return "signup"
	}
	return "login"
}

// AuthSubmitMsg is emitted by the auth form when the user submits
// credentials.
type AuthSubmitMsg struct {
	Mode     AuthMode
	Username string
	Email    string
	Password string
}

// AuthDoneMsg reports the outcome of a login or signup flow.
type AuthDoneMsg struct {
	Err error
}

// HistoryMsg reports the outcome of a history refresh.
type HistoryMsg struct {
	Entries []api.HistoryEntry
	Err     error
}

// AnalysisMsg reports the outcome of one submission. ID correlates the
// response with its submission so a stale response cannot overwrite a newer
// result.
type AnalysisMsg struct {
	ID     uuid.UUID
	Result *api.AnalysisResult
	Err    error
}

// RecordStartedMsg reports the outcome of acquiring the microphone.
type RecordStartedMsg struct {
	Err error
}

// SessionClearedMsg announces the global logout side effect: every
// dependent cache resets when it arrives.
type SessionClearedMsg struct{}

// SubmitRequestMsg is emitted by the composer when the user asks to submit
// the pending entry.
type SubmitRequestMsg struct{}

// RecordToggleMsg is emitted by the composer to start or stop recording.
type RecordToggleMsg struct{}

// Cmd wraps a message into a tea.Cmd for callers emitting events from
// Update.
func Cmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
