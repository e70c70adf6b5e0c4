// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// app carries state shared by all subcommands.
type app struct {
	logLevel  string
	logFormat string
	log       zerolog.Logger
}

// newRootCmd wires the subcommands. The logger starts as a console logger on
// stderr so that flag errors are still reported; PersistentPreRunE replaces
// it once --log-level and --log-format are known.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	a.log, _ = newLogger(os.Stderr, zerolog.LevelInfoValue, logFormatConsole)

	root := &cobra.Command{
		Use:           "blockmul",
		Short:         "Cache-blocked square matrix multiplication",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = logger

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", zerolog.LevelInfoValue, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", logFormatConsole, "log format (console, json)")

	root.AddCommand(newMultiplyCmd(a), newInfoCmd(a))

	return root, a
}

// newLogger builds a zerolog logger writing to w.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--log-level: %w", err)
	}

	switch format {
	case logFormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case logFormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("--log-format: unknown format %q", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
