// Package authform is the login/signup form component. The mode toggle is
// a display concern: switching to login clears the error line and the
// signup-only email field, and never touches username or password.
package authform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/moodlog/pkg/tui/events"
	"tableflip.dev/moodlog/pkg/tui/theme"
)

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
	fieldCount
)

type Model struct {
	mode     events.AuthMode
	username textinput.Model
	email    textinput.Model
	password textinput.Model
	focus    int
	errMsg   string
	busy     bool
	theme    theme.Theme
}

func New() Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		mode:     events.ModeLogin,
		username: username,
		email:    email,
		password: password,
		theme:    theme.Default(),
	}
}

// Mode returns the current display mode.
func (m Model) Mode() events.AuthMode { return m.mode }

// Email exposes the email field value (signup only).
func (m Model) Email() string { return m.email.Value() }

// Username exposes the username field value.
func (m Model) Username() string { return m.username.Value() }

// Password exposes the password field value.
func (m Model) Password() string { return m.password.Value() }

// Error exposes the inline error line.
func (m Model) Error() string { return m.errMsg }

// SetError sets the inline error shown near the form.
func (m *Model) SetError(msg string) { m.errMsg = msg }

// SetBusy marks an auth request in flight; submission keys are ignored
// while set, input stays editable.
func (m *Model) SetBusy(busy bool) { m.busy = busy }

// Reset clears every field, the error, and returns to login mode. Called
// when the session is torn down so credentials never outlive it.
func (m *Model) Reset() {
	m.username.SetValue("")
	m.email.SetValue("")
	m.password.SetValue("")
	m.errMsg = ""
	m.mode = events.ModeLogin
	m.setFocus(fieldUsername)
}

// Toggle switches between login and signup. It clears any prior error and
// the email field so a signup-only value cannot leak into a login attempt.
func (m *Model) Toggle() {
	if m.mode == events.ModeLogin {
		m.mode = events.ModeSignup
	} else {
		m.mode = events.ModeLogin
		m.email.SetValue("")
	}
	m.errMsg = ""
	if m.mode == events.ModeLogin && m.focus == fieldEmail {
		m.setFocus(fieldPassword)
	}
}

func (m *Model) setFocus(f int) {
	m.focus = f
	m.username.Blur()
	m.email.Blur()
	m.password.Blur()
	switch f {
	case fieldUsername:
		m.username.Focus()
	case fieldEmail:
		m.email.Focus()
	case fieldPassword:
		m.password.Focus()
	}
}

func (m *Model) nextField(delta int) {
	f := m.focus
	for {
		f = (f + delta + fieldCount) % fieldCount
		if f == fieldEmail && m.mode == events.ModeLogin {
			continue
		}
		break
	}
	m.setFocus(f)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			m.nextField(1)
			return m, nil
		case "shift+tab", "up":
			m.nextField(-1)
			return m, nil
		case "ctrl+t":
			m.Toggle()
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			submit := events.AuthSubmitMsg{
				Mode:     m.mode,
				Username: strings.TrimSpace(m.username.Value()),
				Email:    strings.TrimSpace(m.email.Value()),
				Password: m.password.Value(),
			}
			if submit.Username == "" || submit.Password == "" ||
				(m.mode == events.ModeSignup && submit.Email == "") {
				m.errMsg = "all fields are required"
				return m, nil
			}
			return m, events.Cmd(submit)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldUsername:
		m.username, cmd = m.username.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	t := m.theme.Auth

	title := "login"
	if m.mode == events.ModeSignup {
		title = "create account"
	}

	rows := []string{
		t.Title.Render(title),
		"",
		t.Label.Render("username") + "  " + m.username.View(),
	}
	if m.mode == events.ModeSignup {
		rows = append(rows, t.Label.Render("email   ")+"  "+m.email.View())
	}
	rows = append(rows, t.Label.Render("password")+"  "+m.password.View())

	if m.errMsg != "" {
		rows = append(rows, "", t.Error.Render(m.errMsg))
	}
	rows = append(rows, "", t.Hint.Render("enter submit · ctrl+t switch to "+other(m.mode)))

	return t.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func other(m events.AuthMode) string {
	if m == events.ModeLogin {
		return "signup"
	}
	return "login"
}
