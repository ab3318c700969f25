// Package capture manages the exclusive-or between typed text and a
// recorded voice memo, and owns the recorder lifecycle.
package capture

import (
	"context"
	"errors"
	"strings"
)

// Clip is a finalized audio recording ready for submission.
type Clip struct {
	Data []byte
	MIME string
}

// Filename derives the upload filename from the clip's MIME type.
func (c Clip) Filename() string {
	switch c.MIME {
	case "audio/wav", "audio/x-wav":
		return "recording.wav"
	case "audio/ogg":
		return "recording.ogg"
	default:
		return "recording.webm"
	}
}

// Empty reports whether the clip holds no audio.
func (c Clip) Empty() bool {
	return len(c.Data) == 0
}

// Kind tags the two capture variants.
type Kind int

const (
	KindText Kind = iota
	KindAudio
)

// Capture is a tagged variant: exactly one of text content or an audio clip.
type Capture struct {
	kind Kind
	text string
	clip Clip
}

// Text builds a text capture.
func Text(content string) Capture {
	return Capture{kind: KindText, text: content}
}

// Audio builds an audio capture.
func Audio(clip Clip) Capture {
	return Capture{kind: KindAudio, clip: clip}
}

func (c Capture) Kind() Kind   { return c.kind }
func (c Capture) Content() string { return c.text }
func (c Capture) Clip() Clip  { return c.clip }

// State is the recording lifecycle of the controller.
type State int

const (
	Idle State = iota
	Recording
	Stopped
)

func (s State) String() string {
	switch s {
	case Recording:
		return "recording"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

var (
	// ErrNotRecording is returned by Stop outside the Recording state.
	ErrNotRecording = errors.New("capture: not recording")
)

// Controller drives the Idle -> Recording -> Stopped -> Idle state machine
// over a Recorder. Free text is independent state, editable at any time; a
// stopped recording supersedes pending text for that submission.
type Controller struct {
	Recorder Recorder

	state State
	sess  *RecSession
	text  string
}

// NewController wires a controller to the given recorder capability.
func NewController(r Recorder) *Controller {
	return &Controller{Recorder: r}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// SetText replaces the pending free-text entry.
func (c *Controller) SetText(s string) { c.text = s }

// Text returns the pending free-text entry.
func (c *Controller) Text() string { return c.text }

// CanSubmit reports whether a submission is possible: either non-empty text
// or a recording in progress (which Stop turns into the payload).
func (c *Controller) CanSubmit() bool {
	return strings.TrimSpace(c.text) != "" || c.state == Recording
}

// Start begins a recording session. Starting while already recording is a
// no-op. A recorder failure (no microphone, missing binary) surfaces before
// any state changes.
func (c *Controller) Start(ctx context.Context) error {
	if c.state == Recording {
		return nil
	}
	if c.Recorder == nil {
		return errors.New("capture: no recorder available")
	}
	sess, err := c.Recorder.Begin(ctx)
	if err != nil {
		return err
	}
	c.sess = sess
	c.state = Recording
	return nil
}

// Stop finalizes the recording into a single audio capture and releases the
// device. Valid only from Recording. The returned Capture always takes
// precedence over any pending text; the controller returns to Idle so the
// capture can be handed straight to submission.
func (c *Controller) Stop() (Capture, error) {
	if c.state != Recording {
		return Capture{}, ErrNotRecording
	}
	sess := c.sess
	c.sess = nil
	c.state = Idle

	clip, err := sess.End()
	if err != nil {
		return Capture{}, err
	}
	return Audio(clip), nil
}

// Cancel abandons an in-flight recording, releasing the device without
// producing a capture. No-op when not recording.
func (c *Controller) Cancel() {
	if c.state != Recording {
		return
	}
	sess := c.sess
	c.sess = nil
	c.state = Idle
	sess.Abort()
}

// Pending resolves what a submission right now would send: a stopped
// recording when one is active, otherwise the trimmed text. ok is false
// when there is nothing to submit.
func (c *Controller) Pending() (Capture, bool, error) {
	if c.state == Recording {
		cap, err := c.Stop()
		if err != nil {
			return Capture{}, false, err
		}
		return cap, true, nil
	}
	text := strings.TrimSpace(c.text)
	if text == "" {
		return Capture{}, false, nil
	}
	return Text(text), true, nil
}
