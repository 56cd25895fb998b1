// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdline reads the command lines to supervise. One line is one
// command: the line is later whitespace-split into an argument vector with
// no quoting or shell interpretation. Lines can come from any reader
// (normally stdin) or from a file fetched by URL.
package cmdline
