// Package api speaks the mood-journal backend's HTTP contract: signup,
// token-based login, text/audio analysis, and history retrieval.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"tableflip.dev/moodlog/pkg/capture"
	"tableflip.dev/moodlog/pkg/session"
)

// ErrUnauthorized reports an authentication rejection (HTTP 401). By the
// time a caller sees it the session has already been cleared.
var ErrUnauthorized = errors.New("api: unauthorized")

// Error is a non-2xx response carrying the server's detail message when it
// sent one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api: server returned status %d", e.StatusCode)
}

// Client issues requests against the analysis backend. Authenticated calls
// read the bearer token from the session store, and any 401 response clears
// that store before the call returns ErrUnauthorized.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    session.Store
}

// New builds a Client for the given backend base URL. No request timeout is
// applied; callers that want one inject their own http.Client.
func New(baseURL string, s session.Store) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		Session:    s,
	}
}

// Signup creates an account. The creation endpoint never returns a token;
// callers follow up with Login.
func (c *Client) Signup(ctx context.Context, username, email, password string) error {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/signup", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	return nil
}

// Login exchanges credentials for a bearer token. The auth endpoint takes
// form-urlencoded credentials, not JSON. The token is returned, not
// committed; the auth flow owns the session transition.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("api: decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("api: token response missing access_token")
	}
	return tok.AccessToken, nil
}

// History fetches the caller's prior entries, ordered by date ascending.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	req, err := c.authedRequest(ctx, http.MethodGet, "/history", nil, "")
	if err != nil {
		return nil, err
	}
	resp, err := c.doAuthed(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []HistoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("api: decode history: %w", err)
	}
	return entries, nil
}

// AnalyzeText submits a typed entry for the given ISO date.
func (c *Client) AnalyzeText(ctx context.Context, date, text string) (*AnalysisResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("date", date); err != nil {
		return nil, err
	}
	if err := w.WriteField("text", text); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return c.analyze(ctx, "/analyze-text", &buf, w.FormDataContentType())
}

// AnalyzeAudio submits a recorded voice memo for the given ISO date. The
// clip travels as a single file field named "file".
func (c *Client) AnalyzeAudio(ctx context.Context, date string, clip capture.Clip) (*AnalysisResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("date", date); err != nil {
		return nil, err
	}
	part, err := w.CreateFormFile("file", clip.Filename())
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(clip.Data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return c.analyze(ctx, "/analyze-audio", &buf, w.FormDataContentType())
}

func (c *Client) analyze(ctx context.Context, path string, body io.Reader, contentType string) (*AnalysisResult, error) {
	req, err := c.authedRequest(ctx, http.MethodPost, path, body, contentType)
	if err != nil {
		return nil, err
	}
	resp, err := c.doAuthed(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	result := &AnalysisResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("api: decode analysis result: %w", err)
	}
	return result, nil
}

// authedRequest builds a bearer-authenticated request. It refuses to build
// one while the session is unauthenticated.
func (c *Client) authedRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	token, ok := c.Session.Token()
	if !ok {
		return nil, ErrUnauthorized
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// doAuthed runs an authenticated request. A 401 clears the session (the
// global force-logout side effect) before surfacing ErrUnauthorized; other
// non-2xx statuses become *Error values.
func (c *Client) doAuthed(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if clearErr := c.Session.Clear(); clearErr != nil {
			return nil, fmt.Errorf("api: clearing rejected session: %w", clearErr)
		}
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var detail detailResponse
	if err := json.Unmarshal(body, &detail); err == nil {
		apiErr.Detail = detail.Detail
	}
	return apiErr
}
