// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render implements the in-place dashboard redraw. A Renderer is an
// append-only sink for one frame of output that remembers how many lines the
// previous frame occupied, so the next frame can erase and overwrite it.
package render
