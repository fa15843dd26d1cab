// Command csp-bench compares the two lvlcsp solvers on N-Queens
// instances of increasing size and records the timings as CSV, one row
// per board size. A solve that fails (or is cut off by --timeout)
// records NA for that column.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcsp/backtrack"
	"github.com/katalvlaran/lvlcsp/csp"
	"github.com/katalvlaran/lvlcsp/forwardcheck"
	"github.com/katalvlaran/lvlcsp/queens"
)

var (
	sizesArg   []int
	outputArg  string
	timeoutArg time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "csp-bench",
		Short: "Benchmark lvlcsp solvers on N-Queens",
		Long: `csp-bench builds an N-Queens problem for each requested board size,
solves it with forward checking (MRV/LCV) and with chronological
backtracking, and writes the per-solver timings to a CSV file.`,
		RunE: runBench,

		PreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.Flags().IntSliceVar(&sizesArg, "sizes", []int{4, 8, 16}, "Board sizes to benchmark.")
	rootCmd.Flags().StringVarP(&outputArg, "output", "o", "results.csv", "CSV file to write timings to.")
	rootCmd.Flags().DurationVar(&timeoutArg, "timeout", 0, "Per-solve time limit (0 = none).")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	f, err := os.Create(outputArg)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputArg, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err = w.Write([]string{"n", "forward_checking_ms", "backtracking_ms"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, n := range sizesArg {
		log.WithField("n", n).Info("benchmarking N-Queens")

		fcMillis, fcOK, err := timeSolve(n, solveForwardChecking)
		if err != nil {
			return err
		}
		btMillis, btOK, err := timeSolve(n, solveBacktracking)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"n":                n,
			"forward_checking": cell(fcMillis, fcOK),
			"backtracking":     cell(btMillis, btOK),
		}).Info("solved")

		row := []string{strconv.Itoa(n), cell(fcMillis, fcOK), cell(btMillis, btOK)}
		if err = w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", outputArg, err)
	}
	log.WithField("output", outputArg).Info("results written")

	return nil
}

// solver runs one algorithm against a fresh assignment buffer.
type solver func(ctx context.Context, p *csp.Problem, values csp.Assignment) (csp.Result, error)

func solveForwardChecking(ctx context.Context, p *csp.Problem, values csp.Assignment) (csp.Result, error) {
	return forwardcheck.Solve(p, values, nil, forwardcheck.WithContext(ctx))
}

func solveBacktracking(ctx context.Context, p *csp.Problem, values csp.Assignment) (csp.Result, error) {
	return backtrack.Solve(p, values, nil, backtrack.WithContext(ctx))
}

// timeSolve builds the n-queens problem, runs one solver under the
// configured timeout, and reports wall-clock milliseconds plus whether
// a verified solution came back. Precondition errors abort the run;
// unsatisfiable or cancelled solves only mark the cell NA.
func timeSolve(n int, fn solver) (float64, bool, error) {
	p, err := queens.NewProblem(n)
	if err != nil {
		return 0, false, fmt.Errorf("building %d-queens: %w", n, err)
	}

	ctx := context.Background()
	if timeoutArg > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeoutArg)
		defer cancel()
	}

	values := csp.NewAssignment(n)
	start := time.Now()
	res, err := fn(ctx, p, values)
	elapsed := time.Since(start)

	switch {
	case res == csp.Cancelled:
		log.WithField("n", n).Warn("solve timed out")

		return elapsed.Seconds() * 1000, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("solving %d-queens: %w", n, err)
	case res != csp.Solved:
		log.WithField("n", n).Warn("no solution found")

		return elapsed.Seconds() * 1000, false, nil
	case !queens.Verify(values):
		return 0, false, fmt.Errorf("solving %d-queens: solver returned an attacked placement", n)
	}

	return elapsed.Seconds() * 1000, true, nil
}

// cell formats one CSV timing cell, NA when the solve did not succeed.
func cell(millis float64, ok bool) string {
	if !ok {
		return "NA"
	}

	return strconv.FormatFloat(millis, 'f', 2, 64)
}
