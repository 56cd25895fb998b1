// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, r *Renderer, s string) {
	t.Helper()

	_, err := io.WriteString(r, s)
	require.NoError(t, err)
}

func TestWriteTracksRows(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	write(t, r, "one\ntwo\n")

	assert.Equal(t, "one\ntwo\n", buf.String())
	assert.Equal(t, []int{3, 3}, r.lineLens)
	assert.Equal(t, 2, r.next)
}

func TestWriteBuildsRowAcrossCalls(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	write(t, r, "ab")
	write(t, r, "c")
	write(t, r, "d\n")

	assert.Equal(t, "abcd\n", buf.String())
	assert.Equal(t, []int{4}, r.lineLens)
	assert.Equal(t, 1, r.next)
}

func TestWriteEmptyInput(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	write(t, r, "")

	assert.Empty(t, buf.String())
	assert.Empty(t, r.lineLens)
}

func TestWriteReportsFullLength(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	n, err := r.Write([]byte("hello\nwor"))

	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "hello\nwor", buf.String())
}

func TestResetBeforeAnyWriteIsNoOp(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	require.NoError(t, r.Reset())

	assert.Empty(t, buf.String())
}

func TestResetErasesEveryTrackedRow(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	write(t, r, "one\ntwo\nthree\n")
	buf.Reset()

	require.NoError(t, r.Reset())

	assert.Equal(t, "\x1b[2K\x1b[F\x1b[2K\x1b[F\x1b[2K\x1b[F", buf.String())
	assert.Equal(t, 0, r.next)
}

func TestRowLengthsPersistAcrossReset(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	write(t, r, "a\nbb\n")
	require.NoError(t, r.Reset())
	write(t, r, "c\n")

	// The tracked count never shrinks and lengths keep accumulating.
	assert.Equal(t, []int{2, 2}, r.lineLens)
	assert.Equal(t, 1, r.next)
}

func TestFrameOverwriteSequence(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	write(t, r, "cmd: \x1b[90m·  \x1b[0m\n")
	require.NoError(t, r.Reset())
	write(t, r, "cmd: \x1b[32mOK\x1b[0m\n")

	assert.Equal(t,
		"cmd: \x1b[90m·  \x1b[0m\n\x1b[2K\x1b[Fcmd: \x1b[32mOK\x1b[0m\n",
		buf.String())
}
