package sudoku_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcsp/csp"
	"github.com/katalvlaran/lvlcsp/forwardcheck"
	"github.com/katalvlaran/lvlcsp/sudoku"
)

// classicPuzzle is the well-known puzzle from Wikipedia's Sudoku
// article; it has a unique solution.
const classicPuzzle = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79`

func mustParse(t *testing.T, puzzle string) sudoku.Grid {
	t.Helper()

	g, err := sudoku.Parse(strings.NewReader(puzzle))
	require.NoError(t, err)

	return g
}

// assertValid checks that g is a fully filled grid with no repeated
// digit in any row, column, or box.
func assertValid(t *testing.T, g sudoku.Grid) {
	t.Helper()

	unit := func(kind string, u int, cells [sudoku.Size]int) {
		var seen [sudoku.Size + 1]bool
		for _, cell := range cells {
			d := g[cell]
			require.True(t, d >= 1 && d <= 9, "%s %d: cell %d holds %d", kind, u, cell, d)
			assert.False(t, seen[d], "%s %d repeats digit %d", kind, u, d)
			seen[d] = true
		}
	}

	for u := 0; u < sudoku.Size; u++ {
		var row, col, box [sudoku.Size]int
		for k := 0; k < sudoku.Size; k++ {
			row[k] = u*sudoku.Size + k
			col[k] = k*sudoku.Size + u
			box[k] = (u/3*3+k/3)*sudoku.Size + (u%3)*3 + k%3
		}
		unit("row", u, row)
		unit("column", u, col)
		unit("box", u, box)
	}
}

func TestNewProblem_Shape(t *testing.T) {
	g := mustParse(t, classicPuzzle)
	p, err := sudoku.NewProblem(&g)
	require.NoError(t, err)

	assert.Equal(t, sudoku.Cells, p.NumVariables())
	assert.Equal(t, 1053, p.NumConstraints())
	assert.NoError(t, p.Validate())

	d, err := p.Domain(0)
	require.NoError(t, err)
	assert.Equal(t, sudoku.Size, d)
}

func TestSolve_ClassicPuzzle(t *testing.T) {
	g := mustParse(t, classicPuzzle)

	solved, res, err := sudoku.Solve(g)
	require.NoError(t, err)
	require.Equal(t, csp.Solved, res)

	assertValid(t, solved)
	// Pre-filled cells must survive into the solution.
	for cell, d := range g {
		if d != 0 {
			assert.Equal(t, d, solved[cell], "cell %d lost its pre-filled digit", cell)
		}
	}
	// Top-left corner of the unique solution.
	assert.Equal(t, 5, solved[0])
	assert.Equal(t, 3, solved[1])
	assert.Equal(t, 4, solved[2])
}

func TestSolve_PrefilledCellKeptInAssignment(t *testing.T) {
	// The unary pre-filter binds fixed cells before search starts; the
	// binding must be visible in the raw assignment, not just the grid.
	g := mustParse(t, classicPuzzle)
	p, err := sudoku.NewProblem(&g)
	require.NoError(t, err)

	values := csp.NewAssignment(sudoku.Cells)
	res, err := forwardcheck.Solve(p, values, &g)
	require.NoError(t, err)
	require.Equal(t, csp.Solved, res)

	assert.Equal(t, 4, values[0], "digit 5 maps to solver value 4")
	assert.Equal(t, 2, values[1], "digit 3 maps to solver value 2")
}

func TestSolve_EmptyGrid(t *testing.T) {
	var g sudoku.Grid

	solved, res, err := sudoku.Solve(g)
	require.NoError(t, err)
	require.Equal(t, csp.Solved, res)
	assertValid(t, solved)
}

func TestSolve_Unsatisfiable(t *testing.T) {
	// Two fives in the first row can never be extended to a solution.
	g := mustParse(t, `55.......
.........
.........
.........
.........
.........
.........
.........
.........`)

	_, res, err := sudoku.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, csp.Unsatisfiable, res)
}

func TestSolution_Errors(t *testing.T) {
	_, err := sudoku.Solution(csp.NewAssignment(3))
	assert.ErrorIs(t, err, sudoku.ErrIncomplete)

	values := csp.NewAssignment(sudoku.Cells)
	_, err = sudoku.Solution(values) // all cells still Unassigned
	assert.ErrorIs(t, err, sudoku.ErrIncomplete)

	for i := range values {
		values[i] = i % sudoku.Size
	}
	g, err := sudoku.Solution(values)
	require.NoError(t, err)
	assert.Equal(t, 1, g[0])
	assert.Equal(t, 9, g[8])
}
