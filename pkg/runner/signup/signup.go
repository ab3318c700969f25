package signup

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/auth"
)

type Signup struct {
	Username string
	Email    string
	Password string
	Flow     *auth.Flow
}

func (n *Signup) Do(ctx context.Context) error {
	if n.Flow == nil {
		return errors.New("can not sign up, no auth flow")
	}
	if n.Username == "" || n.Email == "" || n.Password == "" {
		return errors.New("username, email and password required")
	}
	if err := n.Flow.SubmitSignup(ctx, n.Username, n.Email, n.Password); err != nil {
		return err
	}
	fmt.Printf("account created, logged in as %s\n", n.Username)
	return nil
}
