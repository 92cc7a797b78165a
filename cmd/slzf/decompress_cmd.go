// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ringlz/ringlz"
	"github.com/ringlz/ringlz/internal/streamio"
)

var (
	decompressIn       string
	decompressOut      string
	decompressProgress bool
)

func newDecompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "decompress the input stream",
		RunE:  runDecompress,
	}
	cmd.Flags().StringVar(&decompressIn, "in", "-", "input path, '-' for stdin")
	cmd.Flags().StringVar(&decompressOut, "out", "-", "output path, '-' for stdout")
	cmd.Flags().BoolVar(&decompressProgress, "progress", false, "show a progress bar when attached to a terminal")
	return cmd
}

func runDecompress(cmd *cobra.Command, args []string) error {
	setupLogging()

	src, err := streamio.OpenSource(decompressIn)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := streamio.CreateSink(decompressOut)
	if err != nil {
		return err
	}
	defer dst.Close()

	logrus.Debugf("decompressing %s -> %s", decompressIn, decompressOut)

	bar := maybeProgressBar(decompressProgress, "decompressing")
	in := &streamio.CountingReader{R: withProgress(src, bar)}
	out := &streamio.CountingWriter{W: dst}

	if err := ringlz.Decompress(in, out); err != nil {
		return errors.Wrap(err, "decompress")
	}
	if bar != nil {
		bar.Finish()
	}
	logrus.Debugf("read %d bytes, wrote %d bytes", in.N, out.N)
	return nil
}
