package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/capture"
	"tableflip.dev/moodlog/pkg/history"
	"tableflip.dev/moodlog/pkg/tui/events"
)

type memSession struct {
	token string
}

func (m *memSession) Token() (string, bool) { return m.token, m.token != "" }
func (m *memSession) Authenticated() bool   { return m.token != "" }
func (m *memSession) Commit(token string) error {
	m.token = token
	return nil
}
func (m *memSession) Clear() error {
	m.token = ""
	return nil
}

type stubFetcher struct {
	entries []api.HistoryEntry
	err     error
}

func (s *stubFetcher) History(ctx context.Context) ([]api.HistoryEntry, error) {
	return s.entries, s.err
}

type nopRecorder struct{}

func (nopRecorder) Begin(ctx context.Context) (*capture.RecSession, error) {
	return nil, errors.New("capture: no recording tool found (install ffmpeg)")
}

func testDeps() Deps {
	return Deps{
		Session:  &memSession{token: "T1"},
		History:  history.NewStore(&stubFetcher{}),
		Recorder: nopRecorder{},
	}
}

func update(t *testing.T, m Model, msg interface{}) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return got
}

func TestRestoredSessionStartsInJournal(t *testing.T) {
	m := NewModel(testDeps())
	if m.view != viewJournal {
		t.Fatal("a restored token must open the journal view")
	}

	deps := testDeps()
	deps.Session = &memSession{}
	if fresh := NewModel(deps); fresh.view != viewAuth {
		t.Fatal("no token must open the auth view")
	}
}

func TestStaleAnalysisResultIsDropped(t *testing.T) {
	m := NewModel(testDeps())
	older := uuid.New()
	newer := uuid.New()
	m.lastSubmit = newer
	m.inFlight = 2

	fresh := &api.AnalysisResult{Emotion: "joy", Score: 92}
	m = update(t, m, events.AnalysisMsg{ID: newer, Result: fresh})
	if m.result != fresh {
		t.Fatal("latest submission's result must be applied")
	}

	stale := &api.AnalysisResult{Emotion: "grief", Score: 40}
	m = update(t, m, events.AnalysisMsg{ID: older, Result: stale})
	if m.result != fresh {
		t.Fatal("a superseded submission must not overwrite the newer result")
	}
	if m.inFlight != 0 {
		t.Fatalf("both responses must drain in-flight count, got %d", m.inFlight)
	}
}

func TestAnalysisRejectionTearsDownSession(t *testing.T) {
	m := NewModel(testDeps())
	m.result = &api.AnalysisResult{Emotion: "joy"}

	m = update(t, m, events.AnalysisMsg{ID: uuid.New(), Err: api.ErrUnauthorized})
	if m.view != viewAuth {
		t.Fatal("rejection must return to the auth view")
	}
	if m.result != nil {
		t.Fatal("rejection must clear the displayed result")
	}
	if m.form.Error() != expiredNotice {
		t.Fatalf("expected expiry notice on the form, got %q", m.form.Error())
	}
}

func TestAnalysisFailureKeepsPriorResult(t *testing.T) {
	m := NewModel(testDeps())
	prior := &api.AnalysisResult{Emotion: "joy", Score: 92}
	m.result = prior

	m = update(t, m, events.AnalysisMsg{ID: uuid.New(), Err: errors.New("connection refused")})
	if m.view != viewJournal {
		t.Fatal("a transport failure must not log the user out")
	}
	if m.result != prior {
		t.Fatal("prior result must stay visible after a failure")
	}
	if m.notice == "" {
		t.Fatal("failure must surface a notice")
	}
}

func TestHistoryRejectionTearsDownSession(t *testing.T) {
	m := NewModel(testDeps())
	m.bar.SetEntries([]api.HistoryEntry{{Date: "2026-08-30", Emotion: "joy"}})

	m = update(t, m, events.HistoryMsg{Err: api.ErrUnauthorized})
	if m.view != viewAuth {
		t.Fatal("rejection must return to the auth view")
	}
	if len(m.bar.Entries()) != 0 {
		t.Fatal("rejection must empty the timeline")
	}
}

func TestHistoryFailureKeepsBar(t *testing.T) {
	m := NewModel(testDeps())
	cached := []api.HistoryEntry{{Date: "2026-08-30", Emotion: "joy"}}
	m.bar.SetEntries(cached)

	m = update(t, m, events.HistoryMsg{Err: errors.New("timeout")})
	if m.view != viewJournal {
		t.Fatal("a refresh failure must not log the user out")
	}
	if len(m.bar.Entries()) != 1 {
		t.Fatal("the bar must keep cached entries on failure")
	}
	if m.notice == "" {
		t.Fatal("failure must surface a notice")
	}
}

func TestAuthDoneSwitchesToJournalAndRefreshes(t *testing.T) {
	deps := testDeps()
	deps.Session = &memSession{}
	m := NewModel(deps)

	next, cmd := m.Update(events.AuthDoneMsg{})
	m = next.(Model)
	if m.view != viewJournal {
		t.Fatal("successful auth must open the journal view")
	}
	if cmd == nil {
		t.Fatal("successful auth must trigger a history refresh")
	}
}

func TestAuthDoneErrorStaysOnForm(t *testing.T) {
	deps := testDeps()
	deps.Session = &memSession{}
	m := NewModel(deps)

	m = update(t, m, events.AuthDoneMsg{Err: errors.New("Incorrect password")})
	if m.view != viewAuth {
		t.Fatal("auth failure must stay on the form")
	}
	if m.form.Error() != "Incorrect password" {
		t.Fatalf("form must show the verbatim error, got %q", m.form.Error())
	}
}

func TestSubmitWithNothingPendingIsRefused(t *testing.T) {
	m := NewModel(testDeps())
	m.composer.SetValue("   ")

	next, cmd := m.Update(events.SubmitRequestMsg{})
	m = next.(Model)
	if cmd != nil {
		t.Fatal("blank input must not launch a submission")
	}
	if m.notice == "" {
		t.Fatal("expected a nothing-to-submit notice")
	}
}

func TestSubmitLaunchesWithFreshCorrelation(t *testing.T) {
	m := NewModel(testDeps())
	m.composer.SetValue("I feel great today")

	before := m.lastSubmit
	next, cmd := m.Update(events.SubmitRequestMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a submission command")
	}
	if m.lastSubmit == before {
		t.Fatal("each submission must get a fresh correlation id")
	}
	if m.inFlight != 1 {
		t.Fatalf("expected one in-flight request, got %d", m.inFlight)
	}
}

func TestRecordStartFailureIsNotice(t *testing.T) {
	m := NewModel(testDeps())

	next, cmd := m.Update(events.RecordToggleMsg{})
	m = next.(Model)
	if cmd != nil {
		t.Fatal("a failed start must not launch anything")
	}
	if m.notice == "" {
		t.Fatal("capability failure must surface as a notice")
	}
	if m.composer.Recording() {
		t.Fatal("composer must not show a recording indicator")
	}
}

func TestSessionClearedResetsWithoutExpiryNotice(t *testing.T) {
	m := NewModel(testDeps())
	m.result = &api.AnalysisResult{Emotion: "joy"}

	m = update(t, m, events.SessionClearedMsg{})
	if m.view != viewAuth {
		t.Fatal("logout must return to the auth view")
	}
	if m.form.Error() != "" {
		t.Fatalf("explicit logout must not show the expiry notice, got %q", m.form.Error())
	}
	if m.result != nil {
		t.Fatal("logout must clear the result")
	}
}
