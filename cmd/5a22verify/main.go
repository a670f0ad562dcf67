// Command 5a22verify runs single-step JSON test vectors against the
// CPU core and reports pass/fail with full cycle-trace diffs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sfc-emu/ricoh5a22/verify"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "5a22verify [files...]",
		Short: "Run Ricoh 5A22 single-step test vectors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(args, verbose)
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every case, not just failures")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFiles(paths []string, verbose bool) error {
	total, failed := 0, 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		cases, err := verify.LoadCases(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, tc := range cases {
			total++
			res := verify.Run(tc)
			if !res.Passed {
				failed++
				fmt.Printf("FAIL %s: %s\n", path, res.Case)
				for _, m := range res.Mismatches {
					fmt.Printf("  %-12s expected=%s actual=%s\n", m.Field, m.Expected, m.Actual)
				}
				continue
			}
			if verbose {
				fmt.Printf("PASS %s: %s\n", path, res.Case)
			}
		}
	}

	fmt.Printf("%d/%d passed\n", total-failed, total)
	if failed > 0 {
		return fmt.Errorf("%d test(s) failed", failed)
	}
	return nil
}
