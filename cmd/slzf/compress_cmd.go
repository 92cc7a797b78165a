// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ringlz/ringlz"
	"github.com/ringlz/ringlz/internal/streamio"
)

var (
	compressIn       string
	compressOut      string
	compressStats    bool
	compressProgress bool
)

func newCompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress",
		Short: "compress the input stream",
		RunE:  runCompress,
	}
	cmd.Flags().StringVar(&compressIn, "in", "-", "input path, '-' for stdin")
	cmd.Flags().StringVar(&compressOut, "out", "-", "output path, '-' for stdout")
	cmd.Flags().BoolVar(&compressStats, "stats", false, "print token counters to stderr")
	cmd.Flags().BoolVar(&compressProgress, "progress", false, "show a progress bar when attached to a terminal")
	return cmd
}

func runCompress(cmd *cobra.Command, args []string) error {
	setupLogging()

	src, err := streamio.OpenSource(compressIn)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := streamio.CreateSink(compressOut)
	if err != nil {
		return err
	}
	defer dst.Close()

	logrus.Debugf("compressing %s -> %s", compressIn, compressOut)

	var bar = maybeProgressBar(compressProgress, "compressing")
	in := withProgress(src, bar)

	out := &streamio.CountingWriter{W: dst}
	stats, err := ringlz.CompressStats(in, out)
	if err != nil {
		return errors.Wrap(err, "compress")
	}
	if bar != nil {
		bar.Finish()
	}

	logrus.Debugf("wrote %d bytes", out.N)
	if compressStats {
		fmt.Fprintf(os.Stderr, "in=%d out=%d literals=%d backrefs=%d groups=%d\n",
			stats.BytesIn, out.N, stats.Literals, stats.BackRefs, stats.Groups)
	}
	return nil
}
