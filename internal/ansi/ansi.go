// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ansi

import (
	"regexp"
	"strconv"
)

const (
	prefix = "\x1b["
	suffix = "m"
)

// sgrPattern matches a single SGR color sequence, e.g. "\x1b[31m".
var sgrPattern = regexp.MustCompile(`\x1b\[(\d+)m`)

// Color is a single SGR color code. The value of a Color is the numeric
// code itself, so codes outside the named set below round-trip unchanged.
type Color int

// The codes the dashboard uses for its own output.
const (
	Normal Color = 0
	Red    Color = 31
	Green  Color = 32
	Yellow Color = 33
	Gray   Color = 90
)

// ParseAll returns every color code found in text, in order of occurrence.
// Text without any escape sequences yields an empty result. A code that
// cannot be parsed as an integer degrades to Normal; ParseAll never fails.
func ParseAll(text string) []Color {
	matches := sgrPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	colors := make([]Color, 0, len(matches))

	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			colors = append(colors, Normal)
			continue
		}

		colors = append(colors, Color(n))
	}

	return colors
}

// String renders the literal escape sequence for the color.
func (c Color) String() string {
	return prefix + strconv.Itoa(int(c)) + suffix
}
