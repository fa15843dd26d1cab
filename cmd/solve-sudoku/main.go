// Command solve-sudoku reads a puzzle file (nine rows of digits, with
// '.' or '0' for blanks), models it as a CSP, solves it with the chosen
// algorithm, and prints the completed grid.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcsp/backtrack"
	"github.com/katalvlaran/lvlcsp/csp"
	"github.com/katalvlaran/lvlcsp/forwardcheck"
	"github.com/katalvlaran/lvlcsp/sudoku"
)

const (
	algoForwardChecking = "forward-checking"
	algoBacktracking    = "backtracking"
)

var (
	fileArg    string
	algoArg    string
	timeoutArg time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solve-sudoku",
		Short: "Solve a Sudoku puzzle with lvlcsp",
		Long: `solve-sudoku models a 9×9 puzzle as a constraint satisfaction problem
(81 variables, pre-fill and all-different constraints) and searches for
a completion, by default with forward checking and MRV/LCV heuristics.

Example puzzle file (blanks as '.' or '0'):

    53..7....
    6..195...
    .98....6.
    8...6...3
    4..8.3..1
    7...2...6
    .6....28.
    ...419..5
    ....8..79`,
		RunE: runSolve,
	}

	rootCmd.Flags().StringVarP(&fileArg, "file", "f", "", "Puzzle file to solve.")
	if err := rootCmd.MarkFlagRequired("file"); err != nil {
		log.Fatalf("Failed to mark `file` flag as required")
	}
	rootCmd.Flags().StringVarP(&algoArg, "algorithm", "a", algoForwardChecking,
		fmt.Sprintf("Solving algorithm. One of: [%s, %s]", algoForwardChecking, algoBacktracking))
	rootCmd.Flags().DurationVar(&timeoutArg, "timeout", 0, "Time limit for the solve (0 = none).")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	f, err := os.Open(fileArg)
	if err != nil {
		return fmt.Errorf("opening %s: %w", fileArg, err)
	}
	defer f.Close()

	grid, err := sudoku.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", fileArg, err)
	}
	log.WithField("file", fileArg).Debug("puzzle parsed")
	fmt.Println(grid)

	p, err := sudoku.NewProblem(&grid)
	if err != nil {
		return fmt.Errorf("modeling puzzle: %w", err)
	}

	ctx := context.Background()
	if timeoutArg > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeoutArg)
		defer cancel()
	}

	values := csp.NewAssignment(sudoku.Cells)
	start := time.Now()

	var res csp.Result
	switch algoArg {
	case algoForwardChecking:
		res, err = forwardcheck.Solve(p, values, &grid, forwardcheck.WithContext(ctx))
	case algoBacktracking:
		res, err = backtrack.Solve(p, values, &grid, backtrack.WithContext(ctx))
	default:
		return fmt.Errorf("unknown algorithm %q", algoArg)
	}
	elapsed := time.Since(start)

	switch res {
	case csp.Solved:
		solved, serr := sudoku.Solution(values)
		if serr != nil {
			return fmt.Errorf("converting solution: %w", serr)
		}
		log.WithFields(log.Fields{
			"algorithm": algoArg,
			"elapsed":   elapsed,
		}).Info("puzzle solved")
		fmt.Println(solved)

		return nil
	case csp.Cancelled:
		log.WithField("timeout", timeoutArg).Error("solve timed out")

		return fmt.Errorf("solve cancelled after %s", elapsed)
	default:
		if err != nil {
			return fmt.Errorf("solving puzzle: %w", err)
		}
		log.Error("puzzle has no solution")

		return fmt.Errorf("puzzle is unsatisfiable")
	}
}
