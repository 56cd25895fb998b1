// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the `corral run` command.
package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matt-FFFFFF/corral/internal/ansi"
	"github.com/matt-FFFFFF/corral/internal/cmdline"
	"github.com/matt-FFFFFF/corral/internal/ctxlog"
	"github.com/matt-FFFFFF/corral/internal/render"
	"github.com/matt-FFFFFF/corral/internal/supervise"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag          = "file"
	intervalFlag      = "interval"
	liveFlag          = "live"
	intervalMsDefault = 100
	cliExitStr        = ""
)

// RunCmd is the command that supervises a batch of commands read from stdin
// or from a command list file.
var RunCmd = &cli.Command{
	Name: "run",
	Description: `Run a batch of commands concurrently with a live dashboard.
One command per input line; each line is split on whitespace into a program
name and its arguments, with no quoting or shell interpretation. All commands
are started at once and polled until every one of them has finished, then the
captured output of each failed command is printed.

Command list file URLs use Hashicorp's go-getter syntax, which allows for
fetching files from various sources. When no file is given, commands are read
from standard input until end of stream.
`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    fileFlag,
			Aliases: []string{"f"},
			Usage: "Specify the URL of the command list file to run. " +
				"Supports Hashicorp's go-getter syntax for fetching files from various sources. " +
				"Reads standard input when omitted.",
			OnlyOnce: true,
		},
		&cli.IntFlag{
			Name:     intervalFlag,
			Aliases:  []string{"i"},
			Usage:    "Set the dashboard redraw interval in milliseconds.",
			Value:    intervalMsDefault,
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name: liveFlag,
			Usage: "Draw the in-place dashboard while commands run. " +
				"Defaults to on when stdout is a color-capable terminal.",
			Value:       ansi.Enabled(),
			DefaultText: "auto",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	var (
		lines []string
		err   error
	)

	switch url := cmd.String(fileFlag); url {
	case "":
		lines, err = cmdline.FromReader(os.Stdin)
	default:
		lines, err = cmdline.FromFile(ctx, url)
	}

	if err != nil {
		logger.Error(fmt.Sprintf("Failed to read command list: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	set := supervise.NewSet()
	for _, line := range lines {
		set.AddLine(line)
	}

	if set.Len() == 0 {
		logger.Error("No commands to run.")
		return cli.Exit(cliExitStr, 1)
	}

	logger.Debug("starting batch", "commands", set.Len())

	interval := time.Duration(cmd.Int(intervalFlag)) * time.Millisecond
	live := cmd.Bool(liveFlag)

	// The dashboard and the final details pass share one renderer when live,
	// so the details pass erases the last frame and overwrites it in place.
	frameWriter := io.Discard
	if live {
		frameWriter = cmd.Writer
	}

	dash := render.New(frameWriter)

	if err := drive(ctx, set, dash, interval); err != nil {
		logger.Error(fmt.Sprintf("Run aborted: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	out := dash
	if !live {
		out = render.New(cmd.Writer)
	}

	if err := set.PrintDetails(out); err != nil {
		logger.Error(fmt.Sprintf("Failed to write details: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if set.AnyFailed() {
		logger.Debug("batch finished with failures")
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// drive advances the set one tick per interval until every command has
// reached a terminal state. Commands are never signalled on cancellation;
// the loop simply stops polling.
func drive(ctx context.Context, set *supervise.Set, dash supervise.Frame, interval time.Duration) error {
	for {
		if err := set.Tick(ctx, dash); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}

		if set.AllDone() {
			return nil
		}
	}
}
