// Package session owns the authentication token: its durable storage, the
// in-memory authenticated/unauthenticated state, and the login/logout
// transitions every other component gates on.
package session

import (
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Store is the session contract. Exactly one of {authenticated with a
// non-empty token, unauthenticated} holds at any time.
type Store interface {
	// Token returns the current token and whether the session is
	// authenticated.
	Token() (string, bool)
	// Authenticated reports whether a token is held.
	Authenticated() bool
	// Commit persists the token and marks the session authenticated.
	Commit(token string) error
	// Clear removes the durable token and resets the in-memory session.
	// Safe to call when already unauthenticated.
	Clear() error
}

const tokenKey = "token"

// Load creates a Store backed by diskv under the configured base path and
// restores any previously persisted token. A restored token is trusted
// until the first authenticated request rejects it; no eager validation
// call is made.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("session: base path required")
	}
	s := &store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024, // a token is tiny
	})}
	s.restore()
	return s, nil
}

type store struct {
	d     *diskv.Diskv
	token string
}

func (s *store) restore() {
	val, err := s.d.Read(tokenKey)
	if err != nil || len(val) == 0 {
		return
	}
	s.token = string(val)
}

func (s *store) Token() (string, bool) {
	return s.token, s.token != ""
}

func (s *store) Authenticated() bool {
	return s.token != ""
}

func (s *store) Commit(token string) error {
	if token == "" {
		return errors.New("session: refusing to commit empty token")
	}
	if err := s.d.Write(tokenKey, []byte(token)); err != nil {
		return err
	}
	s.token = token
	return nil
}

func (s *store) Clear() error {
	s.token = ""
	if err := s.d.Erase(tokenKey); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
