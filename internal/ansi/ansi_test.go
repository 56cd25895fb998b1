// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAll(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []Color
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "text without escapes",
			input:    "plain text with no sequences",
			expected: nil,
		},
		{
			name:     "single red",
			input:    "\x1b[31merror\x1b",
			expected: []Color{Red},
		},
		{
			name:     "red then reset",
			input:    "\x1b[31merror\x1b[0m",
			expected: []Color{Red, Normal},
		},
		{
			name:     "all named codes in order",
			input:    "\x1b[0m\x1b[90m\x1b[32m\x1b[31m\x1b[33m",
			expected: []Color{Normal, Gray, Green, Red, Yellow},
		},
		{
			name:     "unnamed code is preserved",
			input:    "\x1b[94mbright blue\x1b[0m",
			expected: []Color{Color(94), Normal},
		},
		{
			name:     "overflowing code degrades to normal",
			input:    "\x1b[99999999999999999999m",
			expected: []Color{Normal},
		},
		{
			name:     "incomplete sequence is ignored",
			input:    "\x1b[31 not a sequence",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseAll(tc.input))
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "\x1b[0m", Normal.String())
	assert.Equal(t, "\x1b[31m", Red.String())
	assert.Equal(t, "\x1b[32m", Green.String())
	assert.Equal(t, "\x1b[33m", Yellow.String())
	assert.Equal(t, "\x1b[90m", Gray.String())
	assert.Equal(t, "\x1b[104m", Color(104).String())
}

func TestParseAllRoundTrip(t *testing.T) {
	for _, c := range []Color{Normal, Red, Green, Yellow, Gray, Color(7), Color(104)} {
		assert.Equal(t, []Color{c}, ParseAll(c.String()), "round trip for code %d", int(c))
	}
}

func TestIsColorCapable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, isColorCapable(), "Expected color output to be disabled")

	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, isColorCapable(), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv("NO_COLOR", "")
	assert.True(t, isColorCapable(), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")
}
