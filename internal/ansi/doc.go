// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ansi is a minimal codec for SGR color escape sequences.
// It parses the color codes embedded in captured command output and
// renders the sequences the dashboard emits itself. It also detects
// whether the current environment is capable of color output.
package ansi
