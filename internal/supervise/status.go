// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

// State is the lifecycle phase of a supervised command.
type State int

const (
	// StateUnstarted is the state before the process has been spawned.
	StateUnstarted State = iota
	// StateRunning is the state while the process is alive.
	StateRunning
	// StateFinished is the terminal state of a process that exited with a code.
	StateFinished
	// StateErrored is the terminal state of a supervisor that hit an error.
	StateErrored
)

// String implements the Stringer interface for State.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Status is the full lifecycle status of a supervisor: the state plus its
// payload. Transitions are monotonic: Unstarted, Running, then one of the
// terminal states. A failed spawn moves straight from Unstarted to Errored.
type Status struct {
	State    State
	ExitCode int    // valid when State is StateFinished
	Message  string // valid when State is StateErrored
}

// Terminal reports whether no further transitions can occur.
func (s Status) Terminal() bool {
	return s.State == StateFinished || s.State == StateErrored
}

// Failed reports whether the command counts as a failure for display and
// detail purposes. A nonzero exit code is a failure even though it is not a
// system error.
func (s Status) Failed() bool {
	switch s.State {
	case StateErrored:
		return true
	case StateFinished:
		return s.ExitCode != 0
	default:
		return false
	}
}

func finished(code int) Status {
	return Status{State: StateFinished, ExitCode: code}
}

func errored(msg string) Status {
	return Status{State: StateErrored, Message: msg}
}
