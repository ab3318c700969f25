package logout

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/session"
)

type Logout struct {
	Session session.Store
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not logout, no session store")
	}
	if err := n.Session.Clear(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}
