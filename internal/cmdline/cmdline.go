// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdline

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
	"github.com/spf13/afero"
)

var (
	// ErrReadInput is returned when the input stream cannot be read.
	ErrReadInput = errors.New("failed to read command input")
	// ErrGetFile is returned when the command list file cannot be fetched.
	ErrGetFile = errors.New("failed to get command list file")
)

// FsFactory returns the filesystem used to read fetched command lists.
// Tests replace it with an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// FromReader reads command lines from r until end of stream. Blank lines
// are kept: the supervisor layer treats them as inert entries.
func FromReader(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}

	return lines, nil
}

// FromFS reads command lines from a file on the given filesystem.
func FromFS(fsys afero.Fs, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}

	defer f.Close() //nolint:errcheck

	return FromReader(f)
}

// FromFile fetches the command list at url using Hashicorp's go-getter and
// reads one command per line. Local paths and remote URLs are both
// supported. The fetched file is removed after reading.
func FromFile(ctx context.Context, url string) ([]string, error) {
	if url == "" {
		return nil, ErrGetFile
	}

	tmpDir, err := os.MkdirTemp("", "corral-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	dst := filepath.Join(tmpDir, "commands")

	req := &getter.Request{
		Src:     url,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	if _, err := client.Get(ctx, req); err != nil {
		return nil, errors.Join(ErrGetFile, err)
	}

	return FromFS(FsFactory(), dst)
}
