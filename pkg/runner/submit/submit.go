package submit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/capture"
	"tableflip.dev/moodlog/pkg/history"
	"tableflip.dev/moodlog/pkg/printers"
)

const layoutISO = "2006-01-02"

// Submit sends one capture to the analysis backend, prints the result, and
// refreshes the history cache. The refresh is independent of the result:
// its failure is reported as a warning, never as the command's error.
type Submit struct {
	Capture capture.Capture
	On      *time.Time
	Client  *api.Client
	History *history.Store
}

func (n *Submit) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not submit, no api client")
	}

	date := time.Now().Format(layoutISO)
	if n.On != nil {
		date = n.On.Format(layoutISO)
	}

	var (
		result *api.AnalysisResult
		err    error
	)
	switch n.Capture.Kind() {
	case capture.KindAudio:
		result, err = n.Client.AnalyzeAudio(ctx, date, n.Capture.Clip())
	default:
		if n.Capture.Content() == "" {
			return errors.New("nothing to submit")
		}
		result, err = n.Client.AnalyzeText(ctx, date, n.Capture.Content())
	}
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return errors.New("session expired, please login again")
		}
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Result(result)

	if n.History != nil {
		if err := n.History.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "history refresh: %v\n", err)
		} else {
			fmt.Println("")
			pp.Timeline(n.History.Entries())
		}
	}
	return nil
}
