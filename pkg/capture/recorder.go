package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// Recorder is the microphone capability. Begin acquires the device and
// starts accumulating audio; the returned session must be ended or aborted
// on every exit path so the hardware lock is always released.
type Recorder interface {
	Begin(ctx context.Context) (*RecSession, error)
}

// RecSession is one exclusive recording session.
type RecSession struct {
	end   func() (Clip, error)
	abort func()
	done  bool
}

// End stops the recording and returns the accumulated audio as one clip.
func (s *RecSession) End() (Clip, error) {
	if s.done {
		return Clip{}, errors.New("capture: session already ended")
	}
	s.done = true
	return s.end()
}

// Abort stops the recording and discards the audio.
func (s *RecSession) Abort() {
	if s.done {
		return
	}
	s.done = true
	s.abort()
}

// ExecRecorder records by shelling out to ffmpeg (or arecord on Linux when
// ffmpeg is absent), writing an opus-in-webm clip to a temp file.
type ExecRecorder struct{}

// Begin checks that a capture binary and input device are available, then
// starts recording. Capability problems surface here, before any state has
// changed.
func (ExecRecorder) Begin(ctx context.Context) (*RecSession, error) {
	bin, args, mime, err := captureCommand()
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "moodlog-rec-*"+filepath.Ext(args[len(args)-1]))
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	tmp.Close()
	args[len(args)-1] = path

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("capture: microphone unavailable: %w", err)
	}

	release := func() {
		// Interrupt lets the encoder flush; fall back to kill.
		if err := cmd.Process.Signal(os.Interrupt); err != nil {
			_ = cmd.Process.Kill()
		}
		waited := make(chan struct{})
		go func() { _ = cmd.Wait(); close(waited) }()
		select {
		case <-waited:
		case <-time.After(3 * time.Second):
			_ = cmd.Process.Kill()
			<-waited
		}
	}

	return &RecSession{
		end: func() (Clip, error) {
			release()
			defer os.Remove(path)
			data, err := os.ReadFile(path)
			if err != nil {
				return Clip{}, fmt.Errorf("capture: read recording: %w", err)
			}
			if len(data) == 0 {
				return Clip{}, errors.New("capture: recording produced no audio")
			}
			return Clip{Data: data, MIME: mime}, nil
		},
		abort: func() {
			release()
			os.Remove(path)
		},
	}, nil
}

// captureCommand picks the recording command for this platform. The final
// argument is the output path placeholder, filled in by Begin.
func captureCommand() (bin string, args []string, mime string, err error) {
	if path, lookErr := exec.LookPath("ffmpeg"); lookErr == nil {
		switch runtime.GOOS {
		case "darwin":
			return path, []string{"-hide_banner", "-loglevel", "error", "-f", "avfoundation", "-i", ":0", "-c:a", "libopus", "-y", "out.webm"}, "audio/webm", nil
		case "linux":
			return path, []string{"-hide_banner", "-loglevel", "error", "-f", "alsa", "-i", "default", "-c:a", "libopus", "-y", "out.webm"}, "audio/webm", nil
		}
	}
	if runtime.GOOS == "linux" {
		if path, lookErr := exec.LookPath("arecord"); lookErr == nil {
			return path, []string{"-q", "-f", "cd", "out.wav"}, "audio/wav", nil
		}
	}
	return "", nil, "", errors.New("capture: no recording tool found (install ffmpeg)")
}
