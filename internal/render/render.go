// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"
)

const (
	eraseLine = "\x1b[2K" // clear the whole current line
	cursorUp  = "\x1b[F"  // move the cursor to the start of the previous line
)

// Renderer writes dashboard frames to w. It tracks the visible length of
// every row written so far; Reset uses that row count to rewind the terminal
// to the top of the previous frame.
type Renderer struct {
	w        io.Writer
	next     int   // row index the next write lands on
	lineLens []int // visible length per row, excluding the newline
}

// New returns a Renderer that writes to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Write implements io.Writer, appending p to the current frame. The input
// is split on newline boundaries, keeping the separator with the preceding
// segment. A segment without a trailing newline leaves the cursor on the
// same row, so one line may be built up across several calls.
func (r *Renderer) Write(p []byte) (int, error) {
	if err := r.writeString(string(p)); err != nil {
		return 0, err
	}

	return len(p), nil
}

func (r *Renderer) writeString(s string) error {
	for len(s) > 0 {
		segment := s

		if i := strings.IndexByte(s, '\n'); i >= 0 {
			segment, s = s[:i+1], s[i+1:]
		} else {
			s = ""
		}

		if r.next >= len(r.lineLens) {
			r.lineLens = append(r.lineLens, 0)
		}

		if _, err := io.WriteString(r.w, segment); err != nil {
			return err
		}

		if segment[len(segment)-1] == '\n' {
			r.lineLens[r.next] += len(segment) - 1
			r.next++

			continue
		}

		r.lineLens[r.next] += len(segment)
	}

	return nil
}

// Reset erases every tracked row and rewinds the cursor to the first one, so
// the next frame overwrites the previous frame in place. The tracked row
// lengths are kept: rows are reused and extended across frames, and a frame
// shorter than its predecessor leaves stale entries behind.
func (r *Renderer) Reset() error {
	if len(r.lineLens) == 0 {
		return nil
	}

	for range r.lineLens {
		if _, err := io.WriteString(r.w, eraseLine+cursorUp); err != nil {
			return err
		}
	}

	r.next = 0

	return nil
}
