// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

import (
	"context"
	"io"
	"strings"
)

// Frame is the sink a Set renders dashboard frames into. Reset must rewind
// the sink to the top of the previously written frame so the next frame
// overwrites it in place.
type Frame interface {
	io.Writer
	Reset() error
}

// Set owns every supervisor for one run and drives them on a shared tick
// cadence. Supervisors are kept in insertion order, which is also the
// rendering order of the dashboard.
type Set struct {
	supervisors []*Supervisor
	tick        uint64
}

// NewSet returns an empty supervisor set.
func NewSet() *Set {
	return &Set{}
}

// AddLine splits line on whitespace and appends a supervisor for the
// resulting argument vector. A blank line yields a supervisor with an empty
// argument vector, which never starts.
func (s *Set) AddLine(line string) {
	s.supervisors = append(s.supervisors, New(strings.Fields(line)))
}

// Len returns the number of supervisors in the set.
func (s *Set) Len() int {
	return len(s.supervisors)
}

// Tick advances the set one round and renders a full dashboard frame to
// out. The first round starts every command, in insertion order and without
// staggering; every later round polls them instead. The tick counter only
// selects animation frames, so it is free to wrap.
func (s *Set) Tick(ctx context.Context, out Frame) error {
	if err := out.Reset(); err != nil {
		return err
	}

	for _, sup := range s.supervisors {
		if s.tick == 0 {
			sup.Start(ctx)

			continue
		}

		sup.Check()
	}

	for _, sup := range s.supervisors {
		if err := sup.RenderSummary(s.tick, out); err != nil {
			return err
		}

		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}

	s.tick++

	return nil
}

// AllDone reports whether every supervisor has reached a terminal state.
func (s *Set) AllDone() bool {
	for _, sup := range s.supervisors {
		if !sup.Status().Terminal() {
			return false
		}
	}

	return true
}

// AnyFailed reports whether at least one supervisor counts as a failure.
func (s *Set) AnyFailed() bool {
	for _, sup := range s.supervisors {
		if sup.Status().Failed() {
			return true
		}
	}

	return false
}

// PrintDetails renders the final static pass: every supervisor's summary
// line with the tick-zero glyph, followed by the quoted output block of
// every failure.
func (s *Set) PrintDetails(out Frame) error {
	if err := out.Reset(); err != nil {
		return err
	}

	for _, sup := range s.supervisors {
		if err := sup.RenderSummary(0, out); err != nil {
			return err
		}

		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}

		if err := sup.RenderDetails(out); err != nil {
			return err
		}
	}

	return nil
}
