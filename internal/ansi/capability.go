// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ansi

import (
	"os"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
)

var enabled bool

func init() {
	enabled = isColorCapable()
}

// Enabled indicates whether the environment is capable of color output.
// It is initialized in package init().
//
// It is set to false if the NO_COLOR environment variable is set. Otherwise
// it is set to true if the FORCE_COLOR environment variable is set, or if
// stdout is a terminal. Terminal detection is done using the
// golang.org/x/term package.
func Enabled() bool {
	return enabled
}

func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
