package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/history"
	"tableflip.dev/moodlog/pkg/printers"
)

// Get refreshes and prints the recent history timeline.
type Get struct {
	History *history.Store
	Table   bool
	JSON    bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.History == nil {
		return errors.New("can not get history, no store")
	}

	err := n.History.Refresh(ctx)
	if errors.Is(err, api.ErrUnauthorized) {
		return errors.New("session expired, please login again")
	}

	if n.JSON {
		if err != nil {
			return err
		}
		b, err := json.Marshal(n.History.Entries())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	if err != nil {
		// Stale data over no data: keep printing whatever we have.
		fmt.Println("warning: using cached history:", err)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("last 90 days")
	pp.Timeline(n.History.Entries())
	if n.Table {
		fmt.Println("")
		pp.History(n.History.Entries())
	}
	return nil
}
