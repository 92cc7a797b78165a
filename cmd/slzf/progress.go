// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v2"
	"golang.org/x/term"
)

// progressEnabled reports whether a progress bar should be drawn: the flag
// was requested and stderr is an interactive terminal.
func progressEnabled(requested bool) bool {
	return requested && term.IsTerminal(int(os.Stderr.Fd()))
}

func newProgressBar(label string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetPredictTime(false))
}

// maybeProgressBar returns a progress bar when requested and attached to a
// terminal, or nil otherwise; withProgress treats a nil bar as a no-op.
func maybeProgressBar(requested bool, label string) *progressbar.ProgressBar {
	if !progressEnabled(requested) {
		return nil
	}
	return newProgressBar(label)
}

// withProgress wraps r so every byte read through it also advances bar.
func withProgress(r io.Reader, bar *progressbar.ProgressBar) io.Reader {
	if bar == nil {
		return r
	}
	return io.TeeReader(r, bar)
}
