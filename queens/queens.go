// Package queens models the N-Queens puzzle as a csp.Problem: one
// variable per column holding the queen's row, domain [0, n), and one
// binary no-attack constraint per column pair. Use either solver from
// lvlcsp on the resulting problem.
//
// Complexity: the model has n variables and n(n-1)/2 constraints;
// building it is O(n²).
package queens

import (
	"errors"

	"github.com/katalvlaran/lvlcsp/csp"
)

// ErrBoardSize indicates a board with fewer than one column.
var ErrBoardSize = errors.New("queens: board size must be at least 1")

// Safe reports whether queens in columns i and j at rows ri and rj
// leave each other unattacked: different rows and different diagonals.
// Columns differ by construction, so columns are never compared.
func Safe(i, j, ri, rj int) bool {
	return ri != rj && i+rj != j+ri && i+ri != j+rj
}

// checker judges a single column pair against the current assignment.
// The opaque data payload is unused by this model.
func checker(c *csp.Constraint, values csp.Assignment, _ any) bool {
	i, _ := c.Variable(0)
	j, _ := c.Variable(1)

	return Safe(i, j, values[i], values[j])
}

// NewProblem builds the N-Queens problem for an n×n board: n variables
// (columns) with domain n (rows) and a no-attack constraint for every
// column pair i < j.
//
// Errors: ErrBoardSize if n < 1.
func NewProblem(n int) (*csp.Problem, error) {
	if n < 1 {
		return nil, ErrBoardSize
	}

	// 1. n variables, one constraint per unordered column pair
	p, err := csp.NewProblem(n, n*(n-1)/2)
	if err != nil {
		return nil, err
	}

	// 2. Every column may hold its queen in any of the n rows
	for i := 0; i < n; i++ {
		if err = p.SetDomain(i, n); err != nil {
			return nil, err
		}
	}

	// 3. Pairwise no-attack constraints
	idx := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			c, cerr := csp.NewBinary(i, j, csp.CheckerFunc(checker))
			if cerr != nil {
				return nil, cerr
			}
			if err = p.SetConstraint(idx, c); err != nil {
				return nil, err
			}
			idx++
		}
	}

	return p, nil
}

// Verify reports whether the assignment places one queen per column
// with no pair sharing a row or diagonal. It is independent of the
// solvers and suits tests and drivers validating solve output.
func Verify(values csp.Assignment) bool {
	n := len(values)
	for i := 0; i < n; i++ {
		if values[i] < 0 || values[i] >= n {
			return false
		}
		for j := i + 1; j < n; j++ {
			if !Safe(i, j, values[i], values[j]) {
				return false
			}
		}
	}

	return true
}
