// SPDX-License-Identifier: GPL-2.0-only

// Command slzf is a standard-input-to-standard-output filter around the
// ringlz codec, in the spirit of the original lzpi tool's "-d toggles
// direction" interface.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	logLevel           = newLogLevelValue()
	decompressShortcut bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slzf",
		Short: "streaming ring-buffer LZ77 filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			if decompressShortcut {
				return runDecompress(cmd, args)
			}
			return runCompress(cmd, args)
		},
	}

	root.PersistentFlags().VarP(logLevel, "level", "l", "log level: error, warn, info, debug")
	root.Flags().BoolVarP(&decompressShortcut, "decompress", "d", false, "decompress instead of compress (matches the original lzpi -d)")

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())

	return root
}

func setupLogging() {
	logrus.SetLevel(logLevel.level)
}

// logLevelValue adapts logrus.Level to the pflag.Value interface so
// --level can be parsed and validated the way pflag's own typed flags are,
// rather than as a free-form string.
type logLevelValue struct {
	level logrus.Level
}

func newLogLevelValue() *logLevelValue {
	return &logLevelValue{level: logrus.WarnLevel}
}

func (v *logLevelValue) String() string {
	return v.level.String()
}

func (v *logLevelValue) Set(s string) error {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", s, err)
	}
	v.level = lvl
	return nil
}

func (v *logLevelValue) Type() string {
	return "level"
}

var _ pflag.Value = (*logLevelValue)(nil)
