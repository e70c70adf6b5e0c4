// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blockmul/blocked"
	"github.com/katalvlaran/blockmul/internal/payload"
	"github.com/katalvlaran/blockmul/matrix"
)

// Tolerances for --verify: the blocked and naive sums differ only in
// association order across blocks.
const (
	verifyRTol = 1e-9
	verifyATol = 1e-12
)

// errVerifyFailed is returned when --verify finds a mismatch.
var errVerifyFailed = errors.New("blocked product differs from the naive product")

type multiplyFlags struct {
	input     string
	output    string
	blockSize int
	schedule  string
	workers   int
	verify    bool
	indent    string
}

func newMultiplyCmd(a *app) *cobra.Command {
	f := &multiplyFlags{}
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply the matrices of a JSON request",
		Long: `Reads {"a": [[...]], "b": [[...]], "k": <block size>} and writes {"solved": [[...]]}.
The block size may also be given as "c" in the request, or with --block-size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMultiply(cmd, a, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "-", "request file (- for stdin)")
	fl.StringVarP(&f.output, "output", "o", "-", "response file (- for stdout)")
	fl.IntVarP(&f.blockSize, "block-size", "k", 0, "block size; overrides the request")
	fl.StringVar(&f.schedule, "schedule", blocked.DefaultSchedule.String(), "tile schedule (sequential, parallel)")
	fl.IntVar(&f.workers, "workers", blocked.DefaultWorkers, "parallel workers (0 = GOMAXPROCS)")
	fl.BoolVar(&f.verify, "verify", false, "check the result against the naive product")
	fl.StringVar(&f.indent, "indent", "", "JSON indent for the response")

	return cmd
}

func runMultiply(cmd *cobra.Command, a *app, f *multiplyFlags) error {
	schedule, ok := blocked.ParseSchedule(f.schedule)
	if !ok {
		return fmt.Errorf("--schedule: unknown schedule %q", f.schedule)
	}
	if f.workers < 0 {
		return fmt.Errorf("--workers: must be >= 0, got %d", f.workers)
	}

	req, err := readRequest(cmd, f.input)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("block-size") {
		req.K = f.blockSize
	}

	optFns := []blocked.Option{blocked.WithSchedule(schedule), blocked.WithWorkers(f.workers)}
	opts := blocked.NewOptions(optFns...)
	log := a.log.With().
		Int("n", len(req.A)).
		Int("k", req.K).
		Stringer("schedule", opts.Schedule()).
		Int("workers", opts.Workers()).
		Logger()

	start := time.Now()
	solved, err := blocked.MultiplyRows(req.A, req.B, req.K, optFns...)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("multiplied")
	log.Debug().Interface("solved", solved).Msg("result")

	if f.verify {
		if err = verify(req, solved); err != nil {
			return err
		}
		log.Info().Msg("verified against naive product")
	}

	return writeResponse(cmd, f.output, f.indent, &payload.Response{Solved: solved})
}

func readRequest(cmd *cobra.Command, path string) (*payload.Request, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}

	return payload.Decode(r)
}

func writeResponse(cmd *cobra.Command, path, indent string, resp *payload.Response) error {
	if path == "-" {
		return payload.Encode(cmd.OutOrStdout(), resp, indent)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = payload.Encode(fh, resp, indent); err != nil {
		_ = fh.Close()
		return err
	}

	return fh.Close()
}

// verify recomputes A×B with the single-pass kernel and compares.
func verify(req *payload.Request, solved [][]float64) error {
	da, err := matrix.FromRows(req.A)
	if err != nil {
		return err
	}
	db, err := matrix.FromRows(req.B)
	if err != nil {
		return err
	}
	want, err := matrix.Mul(da, db)
	if err != nil {
		return err
	}
	got, err := matrix.FromRows(solved)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(got, want, verifyRTol, verifyATol)
	if err != nil {
		return err
	}
	if !ok {
		return errVerifyFailed
	}

	return nil
}
