// Package history caches the recent window of prior journal entries for
// timeline rendering.
package history

import (
	"context"
	"errors"
	"sync"
	"time"

	"tableflip.dev/moodlog/pkg/api"
)

const (
	layoutISO = "2006-01-02"

	// DefaultWindow bounds the cached history to the backend's own
	// insight window.
	DefaultWindow = 90 * 24 * time.Hour
)

// Fetcher is the slice of the API client the store needs.
type Fetcher interface {
	History(ctx context.Context) ([]api.HistoryEntry, error)
}

// Store fetches and caches prior entries, keyed by date, in server order.
// Every successful refresh replaces the sequence wholesale; there is no
// incremental merge.
type Store struct {
	Fetcher Fetcher
	Window  time.Duration
	Now     func() time.Time

	mu      sync.Mutex
	entries []api.HistoryEntry
}

// NewStore builds a history store with the default 90-day window.
func NewStore(f Fetcher) *Store {
	return &Store{Fetcher: f, Window: DefaultWindow}
}

// Entries returns the cached sequence. The slice is a copy; mutating it
// does not affect the cache.
func (s *Store) Entries() []api.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Refresh fetches the history and replaces the cache. An authentication
// rejection empties the cache (the session is already cleared by the
// client); any other failure leaves the previous sequence intact so stale
// data keeps rendering.
func (s *Store) Refresh(ctx context.Context) error {
	if s.Fetcher == nil {
		return errors.New("history: no fetcher configured")
	}
	entries, err := s.Fetcher.History(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.Reset()
		}
		return err
	}
	trimmed := s.trim(entries)
	s.mu.Lock()
	s.entries = trimmed
	s.mu.Unlock()
	return nil
}

// Reset drops the cache. Called when the session is torn down.
func (s *Store) Reset() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

// trim bounds the sequence to the recent window, keeping server order.
// Entries with unparseable dates are kept; the backend owns the format.
func (s *Store) trim(entries []api.HistoryEntry) []api.HistoryEntry {
	window := s.Window
	if window <= 0 {
		window = DefaultWindow
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	cutoff := now().Add(-window)

	out := make([]api.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if d, err := time.Parse(layoutISO, e.Date); err == nil && d.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	return out
}
