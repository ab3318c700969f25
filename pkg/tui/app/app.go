// Package app is the root Bubble Tea model: it gates everything behind the
// session, routes component events, and applies network responses in
// completion order.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/auth"
	"tableflip.dev/moodlog/pkg/capture"
	"tableflip.dev/moodlog/pkg/emotion"
	"tableflip.dev/moodlog/pkg/history"
	"tableflip.dev/moodlog/pkg/session"
	"tableflip.dev/moodlog/pkg/tui/components/authform"
	"tableflip.dev/moodlog/pkg/tui/components/composer"
	"tableflip.dev/moodlog/pkg/tui/components/timelinebar"
	"tableflip.dev/moodlog/pkg/tui/events"
	"tableflip.dev/moodlog/pkg/tui/theme"
)

// Deps are the collaborators the UI drives.
type Deps struct {
	Session  session.Store
	Client   *api.Client
	Flow     *auth.Flow
	History  *history.Store
	Recorder capture.Recorder
}

type view int

const (
	viewAuth view = iota
	viewJournal
)

const layoutISO = "2006-01-02"

// Today supplies the date tag for submissions; overridable in tests.
var Today = func() string {
	return time.Now().Format(layoutISO)
}

type Model struct {
	deps Deps

	view     view
	form     authform.Model
	composer composer.Model
	bar      timelinebar.Model
	spin     spinner.Model
	theme    theme.Theme

	controller *capture.Controller

	authBusy   bool
	inFlight   int
	lastSubmit uuid.UUID

	result *api.AnalysisResult
	notice string
	width  int
}

// NewModel builds the root model. A restored token drops the user straight
// into the journal view, trusted until first use.
func NewModel(deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		deps:       deps,
		form:       authform.New(),
		composer:   composer.New(),
		bar:        timelinebar.New(),
		spin:       sp,
		theme:      theme.Default(),
		controller: capture.NewController(deps.Recorder),
	}
	if deps.Session != nil && deps.Session.Authenticated() {
		m.view = viewJournal
	}
	return m
}

// Run starts the interactive UI.
func Run(deps Deps) error {
	p := tea.NewProgram(NewModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.view == viewJournal {
		cmds = append(cmds, m.refreshCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.composer.SetWidth(msg.Width)
		m.bar.SetWidth(msg.Width - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.controller.Cancel()
			return m, tea.Quit
		case "ctrl+l":
			if m.view == viewJournal {
				m.controller.Cancel()
				if err := m.deps.Session.Clear(); err != nil {
					m.notice = err.Error()
					return m, nil
				}
				return m, events.Cmd(events.SessionClearedMsg{})
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case events.AuthSubmitMsg:
		m.authBusy = true
		m.form.SetBusy(true)
		m.form.SetError("")
		return m, m.authCmd(msg)

	case events.AuthDoneMsg:
		m.authBusy = false
		m.form.SetBusy(false)
		if msg.Err != nil {
			m.form.SetError(msg.Err.Error())
			return m, nil
		}
		m.view = viewJournal
		m.notice = ""
		return m, m.refreshCmd()

	case events.SubmitRequestMsg:
		return m.submitPending()

	case events.RecordToggleMsg:
		return m.toggleRecording()

	case events.AnalysisMsg:
		return m.applyAnalysis(msg)

	case events.HistoryMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, api.ErrUnauthorized) {
				return m.teardown(expiredNotice)
			}
			// Stale data over no data: the bar keeps what it has.
			m.notice = "history refresh failed"
			return m, nil
		}
		m.bar.SetEntries(msg.Entries)
		return m, nil

	case events.SessionClearedMsg:
		return m.teardown("")
	}

	return m.routeToView(msg)
}

func (m Model) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewAuth:
		m.form, cmd = m.form.Update(msg)
	case viewJournal:
		m.composer, cmd = m.composer.Update(msg)
	}
	return m, cmd
}

// submitPending resolves the exclusive-or: a live recording is stopped and
// wins over any typed text; otherwise trimmed text is sent. Nothing to
// send disables submission.
func (m Model) submitPending() (tea.Model, tea.Cmd) {
	m.controller.SetText(m.composer.Value())
	if !m.controller.CanSubmit() {
		m.notice = "nothing to submit yet"
		return m, nil
	}
	payload, ok, err := m.controller.Pending()
	m.composer.SetRecording(false)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	if !ok {
		m.notice = "nothing to submit yet"
		return m, nil
	}
	return m.launch(payload)
}

func (m Model) toggleRecording() (tea.Model, tea.Cmd) {
	if m.controller.State() == capture.Recording {
		// Stop hands the clip straight to submission, superseding text.
		payload, err := m.controller.Stop()
		m.composer.SetRecording(false)
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		return m.launch(payload)
	}
	if err := m.controller.Start(context.Background()); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.composer.SetRecording(true)
	m.notice = ""
	return m, nil
}

func (m Model) launch(payload capture.Capture) (tea.Model, tea.Cmd) {
	id := uuid.New()
	m.lastSubmit = id
	m.inFlight++
	m.composer.SetBusy(true)
	m.notice = ""
	return m, m.submitCmd(id, payload)
}

func (m Model) applyAnalysis(msg events.AnalysisMsg) (tea.Model, tea.Cmd) {
	if m.inFlight > 0 {
		m.inFlight--
	}
	m.composer.SetBusy(m.inFlight > 0)

	if msg.Err != nil {
		if errors.Is(msg.Err, api.ErrUnauthorized) {
			return m.teardown(expiredNotice)
		}
		// Prior result stays visible; failure is a non-blocking notice.
		m.notice = "analysis failed: " + msg.Err.Error()
		return m, nil
	}

	// Correlate before applying so an out-of-order response for an older
	// submission cannot overwrite a newer result. The refresh still runs:
	// the server recorded the entry either way.
	if msg.ID == m.lastSubmit {
		m.result = msg.Result
		m.composer.Reset()
	}
	return m, m.refreshCmd()
}

const expiredNotice = "session expired, please login again"

// teardown is the full local session reset behind every 401: auth view,
// empty form, empty caches, no result. In-flight requests are not aborted;
// their responses land after the reset and are ignored or re-trigger this.
func (m Model) teardown(notice string) (tea.Model, tea.Cmd) {
	m.view = viewAuth
	m.form.Reset()
	m.form.SetError(notice)
	m.composer.Reset()
	m.composer.SetRecording(false)
	m.controller.Cancel()
	m.result = nil
	m.bar.SetEntries(nil)
	if m.deps.History != nil {
		m.deps.History.Reset()
	}
	m.notice = ""
	return m, nil
}

func (m Model) authCmd(s events.AuthSubmitMsg) tea.Cmd {
	flow := m.deps.Flow
	return func() tea.Msg {
		var err error
		if s.Mode == events.ModeSignup {
			err = flow.SubmitSignup(context.Background(), s.Username, s.Email, s.Password)
		} else {
			err = flow.SubmitLogin(context.Background(), s.Username, s.Password)
		}
		return events.AuthDoneMsg{Err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	h := m.deps.History
	return func() tea.Msg {
		if h == nil {
			return events.HistoryMsg{}
		}
		err := h.Refresh(context.Background())
		return events.HistoryMsg{Entries: h.Entries(), Err: err}
	}
}

func (m Model) submitCmd(id uuid.UUID, payload capture.Capture) tea.Cmd {
	client := m.deps.Client
	date := Today()
	return func() tea.Msg {
		var (
			result *api.AnalysisResult
			err    error
		)
		if payload.Kind() == capture.KindAudio {
			result, err = client.AnalyzeAudio(context.Background(), date, payload.Clip())
		} else {
			result, err = client.AnalyzeText(context.Background(), date, payload.Content())
		}
		return events.AnalysisMsg{ID: id, Result: result, Err: err}
	}
}

func (m Model) View() string {
	if m.view == viewAuth {
		body := m.form.View()
		if m.authBusy {
			body = lipgloss.JoinVertical(lipgloss.Left, body, m.spin.View()+" signing in...")
		}
		return body + "\n"
	}

	sections := []string{m.composer.View()}
	if card := m.resultCard(); card != "" {
		sections = append(sections, card)
	}
	sections = append(sections, m.bar.View(), m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) resultCard() string {
	if m.result == nil {
		return ""
	}
	t := m.theme.Result
	label := emotion.Label(m.result.Emotion)

	head := t.Emotion.Foreground(lipgloss.Color(emotion.Shade(label, m.result.Score))).Render(emotion.Display(label)) +
		t.Score.Render("  "+emotion.FormatScore(m.result.Score)+" confidence")

	rows := []string{head}
	if m.result.Insight != "" {
		rows = append(rows, "", t.Insight.Render(wordwrap.String(m.result.Insight, m.wrapWidth())))
	}
	if m.result.Transcription != "" {
		rows = append(rows, "", t.Faint.Render("transcribed:"),
			wordwrap.String(m.result.Transcription, m.wrapWidth()))
	}
	return t.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) footer() string {
	t := m.theme.Footer

	left := t.Help.Render("ctrl+s submit · ctrl+r record · ctrl+l logout · ctrl+c quit")
	if m.inFlight > 0 {
		left = m.spin.View() + " " + t.Status.Render(fmt.Sprintf("analyzing (%d in flight)", m.inFlight))
	}
	if m.notice != "" {
		left = left + "  " + t.Notice.Render(m.notice)
	}
	return left
}

func (m Model) wrapWidth() int {
	if m.width > 12 {
		return m.width - 12
	}
	return 60
}
