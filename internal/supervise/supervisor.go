// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/matt-FFFFFF/corral/internal/ansi"
	"github.com/matt-FFFFFF/corral/internal/ctxlog"
)

// statusCodeErrMsg is the message recorded when a process ends without a
// retrievable exit code, e.g. when it is killed by a signal.
const statusCodeErrMsg = "Error reading status code"

var (
	// unstartedFrames is the dot wave shown while a command has not started.
	unstartedFrames = [...]string{"·  ", " · ", "  ·", " · "}
	// runningFrames is the braille spinner shown while a command runs.
	runningFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// Supervisor owns one external process: its argument vector, the process
// handle once started, and the status state machine. A supervisor is only
// ever touched by the single driving loop, so it needs no locking.
type Supervisor struct {
	argv   []string
	cmd    *exec.Cmd
	status Status
	stdout io.Reader
	stderr io.Reader
	waitCh chan error
}

// New creates an unstarted supervisor for the given argument vector.
func New(argv []string) *Supervisor {
	return &Supervisor{
		argv:   argv,
		status: Status{State: StateUnstarted},
	}
}

// Status returns the supervisor's current status.
func (s *Supervisor) Status() Status {
	return s.status
}

// Start spawns the command with stdout and stderr captured for the final
// detail pass. An empty argument vector is a no-op that leaves the
// supervisor Unstarted. A spawn failure moves it straight to Errored and no
// process handle is retained.
//
// Capture goes into in-process buffers rather than inherited pipes, so a
// chatty child can never block on a full pipe while the loop is polling.
func (s *Supervisor) Start(ctx context.Context) {
	if len(s.argv) == 0 {
		return
	}

	logger := ctxlog.Logger(ctx).With("command", s.argv[0])

	cmd := exec.Command(s.argv[0], s.argv[1:]...)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		logger.Debug("spawn failed", "error", err)

		s.status = errored(err.Error())

		return
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	s.cmd = cmd
	s.stdout = stdout
	s.stderr = stderr
	s.status = Status{State: StateRunning}

	// exec.Cmd has no non-blocking wait, so park the blocking Wait in a
	// goroutine and let Check poll the channel instead.
	s.waitCh = make(chan error, 1)

	go func() {
		s.waitCh <- cmd.Wait()
	}()
}

// Check performs a non-blocking completion poll. It is a no-op for
// supervisors that are already terminal or that hold no process handle.
func (s *Supervisor) Check() {
	if s.status.Terminal() || s.cmd == nil {
		return
	}

	select {
	case err := <-s.waitCh:
		s.status = exitStatus(s.cmd, err)
	default:
		// Still running.
	}
}

// exitStatus maps the outcome of Wait onto a terminal status.
func exitStatus(cmd *exec.Cmd, err error) Status {
	if err == nil {
		return finished(cmd.ProcessState.ExitCode())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Exited() {
			return finished(exitErr.ExitCode())
		}

		// Signal death: there is no exit code to read.
		return errored(statusCodeErrMsg)
	}

	return errored(err.Error())
}

// RenderSummary writes the command's one-line dashboard entry with no
// trailing newline: the argument vector joined by spaces, then a colored
// status glyph. tick selects the animation frame for non-terminal states.
func (s *Supervisor) RenderSummary(tick uint64, out io.Writer) error {
	var (
		glyph string
		c     ansi.Color
	)

	switch s.status.State {
	case StateUnstarted:
		glyph = unstartedFrames[tick%uint64(len(unstartedFrames))]
		c = ansi.Gray
	case StateRunning:
		glyph = runningFrames[tick%uint64(len(runningFrames))]
		c = ansi.Normal
	case StateFinished:
		glyph, c = "FAILED", ansi.Red
		if s.status.ExitCode == 0 {
			glyph, c = "OK", ansi.Green
		}
	case StateErrored:
		glyph, c = "FAILED", ansi.Red
	}

	_, err := fmt.Fprintf(out, "%s: %s%s%s", strings.Join(s.argv, " "), c, glyph, ansi.Normal)

	return err
}

// RenderDetails writes the captured output of a failed command as quoted
// lines. Successful and non-terminal supervisors produce nothing. A
// supervisor without a process handle failed to spawn, which is reported
// instead of any output.
func (s *Supervisor) RenderDetails(out io.Writer) error {
	if !s.status.Failed() {
		return nil
	}

	if s.cmd == nil {
		_, err := fmt.Fprintf(out, "%s!%s Failed to start process\n", ansi.Red, ansi.Normal)

		return err
	}

	if err := quoteStream(s.stdout, out); err != nil {
		return err
	}

	return quoteStream(s.stderr, out)
}

// quoteStream re-emits a captured stream line by line, each prefixed with a
// quote marker colored per quoteColor. A read failure is rendered inline as
// a red annotation rather than propagated.
func quoteStream(src io.Reader, out io.Writer) error {
	if src == nil {
		return nil
	}

	raw, err := io.ReadAll(src)

	text := string(raw)
	if err != nil {
		text += fmt.Sprintf("%sError reading stdout%s: %s", ansi.Red, ansi.Normal, err)
	}

	if text == "" {
		return nil
	}

	for _, line := range strings.Split(text, "\n") {
		if _, err := fmt.Fprintf(out, "%s│%s %s\n", quoteColor(line), ansi.Normal, line); err != nil {
			return err
		}
	}

	return nil
}

// quoteColor derives the quote marker color from the color codes embedded
// in the line: none is Normal, exactly one adopts that color, and two or
// more is treated as mixed and renders Yellow.
func quoteColor(line string) ansi.Color {
	colors := ansi.ParseAll(line)

	switch len(colors) {
	case 0:
		return ansi.Normal
	case 1:
		return colors[0]
	default:
		return ansi.Yellow
	}
}
