// Package auth drives signup-then-auto-login and login against the remote
// auth endpoints, committing successful tokens to the session store.
package auth

import (
	"context"
	"errors"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/session"
)

// Fallback messages when the server omits a detail string.
const (
	GenericLoginError  = "login failed"
	GenericSignupError = "signup failed"
)

// Flow owns the two auth transitions. It never touches the session store on
// failure.
type Flow struct {
	Client  *api.Client
	Session session.Store
}

// SubmitLogin exchanges credentials for a token and commits it. The error
// message is the server's detail verbatim, or a generic fallback.
func (f *Flow) SubmitLogin(ctx context.Context, username, password string) error {
	token, err := f.Client.Login(ctx, username, password)
	if err != nil {
		return surfaced(err, GenericLoginError)
	}
	return f.Session.Commit(token)
}

// SubmitSignup creates the account, then performs exactly one login with
// the same username and password (the creation endpoint returns no token).
// A signup failure aborts before any login attempt.
func (f *Flow) SubmitSignup(ctx context.Context, username, email, password string) error {
	if err := f.Client.Signup(ctx, username, email, password); err != nil {
		return surfaced(err, GenericSignupError)
	}
	return f.SubmitLogin(ctx, username, password)
}

// surfaced keeps server-provided details verbatim and replaces detail-less
// server errors with the generic fallback. Transport errors pass through.
func surfaced(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail == "" {
		return errors.New(fallback)
	}
	return err
}
