// Package sudoku models the classic 9×9 puzzle as a csp.Problem: 81
// variables with domain 9 (solver value v stands for digit v+1), one
// unary pre-fill constraint per cell, and pairwise not-equal constraints
// over every row, column, and 3×3 box. The original puzzle travels as
// the checkers' data payload, so one model function serves any grid.
package sudoku

import (
	"github.com/katalvlaran/lvlcsp/csp"
	"github.com/katalvlaran/lvlcsp/forwardcheck"
)

// Constraint counts: one unary per cell, plus 36 not-equal pairs per
// unit across 9 rows, 9 columns, and 9 boxes.
const (
	pairsPerUnit    = Size * (Size - 1) / 2
	binaryCount     = pairsPerUnit * 3 * Size
	constraintCount = binaryCount + Cells
)

// preassigned enforces a cell's pre-filled digit. The data payload is
// the *Grid the problem was built for; a nil payload or a blank cell
// passes vacuously. Puzzle digits are 1..9, solver values 0..8.
func preassigned(c *csp.Constraint, values csp.Assignment, data any) bool {
	grid, ok := data.(*Grid)
	if !ok || grid == nil {
		return true
	}
	cell, _ := c.Variable(0)
	fixed := grid[cell]
	if fixed == 0 {
		return true
	}

	return values[cell] == fixed-1
}

// notEqual enforces that two cells hold different values.
func notEqual(c *csp.Constraint, values csp.Assignment, _ any) bool {
	a, _ := c.Variable(0)
	b, _ := c.Variable(1)

	return values[a] != values[b]
}

// NewProblem builds the CSP model for the given puzzle. Solve calls
// against the returned problem must pass grid as the data payload so
// the pre-fill constraints see the original digits.
func NewProblem(grid *Grid) (*csp.Problem, error) {
	p, err := csp.NewProblem(Cells, constraintCount)
	if err != nil {
		return nil, err
	}

	// 1. Every cell ranges over the nine digits
	for cell := 0; cell < Cells; cell++ {
		if err = p.SetDomain(cell, Size); err != nil {
			return nil, err
		}
	}

	idx := 0
	attach := func(c *csp.Constraint, cerr error) error {
		if cerr != nil {
			return cerr
		}
		if serr := p.SetConstraint(idx, c); serr != nil {
			return serr
		}
		idx++

		return nil
	}

	// 2. Unary pre-fill constraints, one per cell; blanks pass vacuously
	for cell := 0; cell < Cells; cell++ {
		if err = attach(csp.NewUnary(cell, csp.CheckerFunc(preassigned))); err != nil {
			return nil, err
		}
	}

	// 3. Rows: all pairs within each row differ
	for row := 0; row < Size; row++ {
		for c1 := 0; c1 < Size-1; c1++ {
			for c2 := c1 + 1; c2 < Size; c2++ {
				if err = attach(csp.NewBinary(row*Size+c1, row*Size+c2, csp.CheckerFunc(notEqual))); err != nil {
					return nil, err
				}
			}
		}
	}

	// 4. Columns: all pairs within each column differ
	for col := 0; col < Size; col++ {
		for r1 := 0; r1 < Size-1; r1++ {
			for r2 := r1 + 1; r2 < Size; r2++ {
				if err = attach(csp.NewBinary(r1*Size+col, r2*Size+col, csp.CheckerFunc(notEqual))); err != nil {
					return nil, err
				}
			}
		}
	}

	// 5. Boxes: all pairs within each 3×3 box differ
	for boxRow := 0; boxRow < boxSize; boxRow++ {
		for boxCol := 0; boxCol < boxSize; boxCol++ {
			var members [Size]int
			m := 0
			for r := 0; r < boxSize; r++ {
				for c := 0; c < boxSize; c++ {
					members[m] = (boxRow*boxSize+r)*Size + boxCol*boxSize + c
					m++
				}
			}
			for i := 0; i < Size-1; i++ {
				for j := i + 1; j < Size; j++ {
					if err = attach(csp.NewBinary(members[i], members[j], csp.CheckerFunc(notEqual))); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return p, nil
}

// Solution converts a complete assignment (solver values 0..8) back to
// a grid of digits 1..9.
//
// Errors: ErrIncomplete if any cell is unassigned or out of range.
func Solution(values csp.Assignment) (Grid, error) {
	var g Grid
	if len(values) != Cells {
		return Grid{}, ErrIncomplete
	}
	for cell, v := range values {
		if v < 0 || v >= Size {
			return Grid{}, ErrIncomplete
		}
		g[cell] = v + 1
	}

	return g, nil
}

// Solve is the one-call driver: it models grid, runs the
// forward-checking solver, and converts the result back to digits.
// The returned grid is meaningful only when the result is csp.Solved.
func Solve(grid Grid, opts ...forwardcheck.Option) (Grid, csp.Result, error) {
	p, err := NewProblem(&grid)
	if err != nil {
		return Grid{}, csp.Unsatisfiable, err
	}

	values := csp.NewAssignment(Cells)
	res, err := forwardcheck.Solve(p, values, &grid, opts...)
	if err != nil || res != csp.Solved {
		return Grid{}, res, err
	}

	solved, err := Solution(values)
	if err != nil {
		return Grid{}, csp.Unsatisfiable, err
	}

	return solved, csp.Solved, nil
}
