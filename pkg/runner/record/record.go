package record

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/moodlog/pkg/api"
	"tableflip.dev/moodlog/pkg/capture"
	"tableflip.dev/moodlog/pkg/history"
	"tableflip.dev/moodlog/pkg/runner/submit"
)

// Record captures a voice memo from the microphone (Enter stops the
// recording) and hands it straight to submission.
type Record struct {
	Recorder capture.Recorder
	On       *time.Time
	Client   *api.Client
	History  *history.Store
	Stdin    io.Reader
}

func (n *Record) Do(ctx context.Context) error {
	if n.Recorder == nil {
		return errors.New("can not record, no recorder")
	}

	ctrl := capture.NewController(n.Recorder)
	if err := ctrl.Start(ctx); err != nil {
		return err
	}

	fmt.Println("recording... press Enter to stop")
	in := n.Stdin
	if in == nil {
		in = os.Stdin
	}
	if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && err != io.EOF {
		ctrl.Cancel()
		return err
	}

	memo, err := ctrl.Stop()
	if err != nil {
		return err
	}

	s := submit.Submit{
		Capture: memo,
		On:      n.On,
		Client:  n.Client,
		History: n.History,
	}
	return s.Do(ctx)
}
