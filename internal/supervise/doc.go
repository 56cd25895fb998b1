// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package supervise owns the lifecycle of the supervised commands. A
// Supervisor wraps one external process: it can start it, poll it without
// blocking, and render its summary line and, on failure, its captured
// output. A Set drives every supervisor on one shared tick cadence and
// renders whole dashboard frames.
package supervise
