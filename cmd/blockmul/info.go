// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print CPU and scheduler details relevant to --workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.log.Debug().Str("goarch", runtime.GOARCH).Msg("info")
			printInfo(cmd.OutOrStdout())

			return nil
		},
	}
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "GOMAXPROCS: %d (default --workers)\n", runtime.GOMAXPROCS(0))

	switch runtime.GOARCH {
	case "amd64", "386":
		fmt.Fprintf(w, "HasSSE41: %v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "HasAVX: %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "HasAVX2: %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "HasFMA: %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	case "arm64":
		fmt.Fprintf(w, "HasASIMD: %v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "HasFP: %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "HasSVE: %v\n", cpu.ARM64.HasSVE)
	}
}
