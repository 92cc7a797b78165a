// SPDX-License-Identifier: GPL-2.0-only

// Package streamio adapts the codec's byte source/sink contract onto files
// and standard input/output, and wraps the errors that crosses that
// boundary with enough context to be useful in a CLI error message.
package streamio

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// CountingReader wraps an io.Reader and tracks the total number of bytes
// read through it, for reporting.
type CountingReader struct {
	R io.Reader
	N int64
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	c.N += int64(n)
	return n, err
}

// CountingWriter is the CountingReader counterpart for the sink side.
type CountingWriter struct {
	W io.Writer
	N int64
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.W.Write(p)
	c.N += int64(n)
	return n, err
}

// OpenSource opens path for reading, or returns stdin when path is empty or
// "-". The returned ReadCloser is always safe to Close.
func OpenSource(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open source %q", path)
	}
	return f, nil
}

// CreateSink creates (truncating) path for writing, or returns stdout when
// path is empty or "-".
func CreateSink(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create sink %q", path)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
