package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/moodlog/pkg/capture"
)

type fakeSession struct {
	token   string
	cleared int
}

func (f *fakeSession) Token() (string, bool) { return f.token, f.token != "" }
func (f *fakeSession) Authenticated() bool   { return f.token != "" }
func (f *fakeSession) Commit(token string) error {
	f.token = token
	return nil
}
func (f *fakeSession) Clear() error {
	f.token = ""
	f.cleared++
	return nil
}

func TestLoginSendsFormEncodedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "pw" {
			t.Errorf("unexpected form values %v", r.PostForm)
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "T1", "token_type": "bearer"})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{})
	token, err := c.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "T1" {
		t.Fatalf("expected token T1, got %q", token)
	}
}

func TestLoginSurfacesServerDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect password"})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{})
	_, err := c.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Detail != "Incorrect password" {
		t.Fatalf("expected verbatim detail, got %q", apiErr.Detail)
	}
}

func TestSignupErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode signup body: %v", err)
		}
		if body["username"] != "bob" || body["email"] != "b@x.com" || body["password"] != "pw" {
			t.Errorf("unexpected signup body %v", body)
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Username already taken"})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{})
	err := c.Signup(context.Background(), "bob", "b@x.com", "pw")
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Detail != "Username already taken" {
		t.Fatalf("expected detail error, got %v", err)
	}
}

func TestHistoryRejectionClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := &fakeSession{token: "stale"}
	c := New(srv.URL, s)
	_, err := c.History(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if s.cleared != 1 {
		t.Fatalf("expected exactly one clear, got %d", s.cleared)
	}
	if s.Authenticated() {
		t.Fatal("session should be unauthenticated after rejection")
	}
}

func TestHistoryCarriesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer T1" {
			t.Errorf("unexpected auth header %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"date": "2026-08-29", "emotion": "joy"},
			{"date": "2026-08-30", "emotion": "sadness"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "T1"})
	entries, err := c.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 || entries[0].Emotion != "joy" || entries[1].Date != "2026-08-30" {
		t.Fatalf("unexpected entries %v", entries)
	}
}

func TestAuthenticatedRequestRefusedWithoutToken(t *testing.T) {
	c := New("http://unused.invalid", &fakeSession{})
	_, err := c.History(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized before any request, got %v", err)
	}
}

func TestAnalyzeTextPostsMultipartFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze-text" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("text"); got != "I feel great today" {
			t.Errorf("unexpected text %q", got)
		}
		if got := r.FormValue("date"); got != "2026-08-30" {
			t.Errorf("unexpected date %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"emotion": "joy", "score": 92.0, "insight": "Savoring: note the details.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "T1"})
	result, err := c.AnalyzeText(context.Background(), "2026-08-30", "I feel great today")
	if err != nil {
		t.Fatalf("analyze text: %v", err)
	}
	if result.Emotion != "joy" || result.Score != 92 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Transcription != "" {
		t.Fatalf("text analysis should carry no transcription, got %q", result.Transcription)
	}
}

func TestAnalyzeAudioPostsSingleFileField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze-audio" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		files := r.MultipartForm.File["file"]
		if len(files) != 1 {
			t.Fatalf("expected exactly one file field, got %d", len(files))
		}
		if files[0].Filename != "recording.webm" {
			t.Errorf("unexpected filename %q", files[0].Filename)
		}
		if got := r.FormValue("date"); got != "2026-08-30" {
			t.Errorf("unexpected date %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"emotion": "fear", "score": 77.5, "insight": "Box breathing.",
			"is_audio": true, "transcription": "i am nervous about tomorrow",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "T1"})
	clip := capture.Clip{Data: []byte("webm-bytes"), MIME: "audio/webm"}
	result, err := c.AnalyzeAudio(context.Background(), "2026-08-30", clip)
	if err != nil {
		t.Fatalf("analyze audio: %v", err)
	}
	if result.Transcription != "i am nervous about tomorrow" || !result.IsAudio {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestAnalyzeRejectionClearsSessionAndReturnsNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := &fakeSession{token: "stale"}
	c := New(srv.URL, s)
	result, err := c.AnalyzeText(context.Background(), "2026-08-30", "hello")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no result on rejection, got %+v", result)
	}
	if s.cleared != 1 {
		t.Fatalf("expected session cleared once, got %d", s.cleared)
	}
}
