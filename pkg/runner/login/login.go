package login

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/auth"
)

type Login struct {
	Username string
	Password string
	Flow     *auth.Flow
}

func (n *Login) Do(ctx context.Context) error {
	if n.Flow == nil {
		return errors.New("can not login, no auth flow")
	}
	if n.Username == "" || n.Password == "" {
		return errors.New("username and password required")
	}
	if err := n.Flow.SubmitLogin(ctx, n.Username, n.Password); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", n.Username)
	return nil
}
