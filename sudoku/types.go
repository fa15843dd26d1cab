// Package sudoku defines the grid type, sentinel errors, and dimension
// constants for the Sudoku model subpackage of
// github.com/katalvlaran/lvlcsp.
package sudoku

import (
	"errors"
	"strings"
)

// Board dimensions. Cell (row, col) maps to variable row*Size+col.
const (
	// Size is the number of rows, columns, and distinct digits.
	Size = 9
	// Cells is the total number of cells (variables).
	Cells = Size * Size
	// boxSize is the edge of one 3×3 box.
	boxSize = 3
)

// Sentinel errors for sudoku parsing and conversion.
var (
	// ErrPuzzleShort indicates the input ended before 9 puzzle rows were read.
	ErrPuzzleShort = errors.New("sudoku: puzzle must have 9 rows")
	// ErrRowLength indicates a puzzle row without exactly 9 cells.
	ErrRowLength = errors.New("sudoku: each row must have exactly 9 cells")
	// ErrBadCell indicates a cell character outside digits, '.', and '0'.
	ErrBadCell = errors.New("sudoku: cell must be a digit 1-9, '.', or '0'")
	// ErrIncomplete indicates an assignment with unassigned or out-of-range cells.
	ErrIncomplete = errors.New("sudoku: assignment does not cover all cells")
)

// Grid holds one digit per cell: 1..9, or 0 for a blank. A Grid doubles
// as the opaque data payload forwarded to the model's checkers, so the
// pre-fill constraints can consult the original puzzle.
type Grid [Cells]int

// String renders the grid with 3×3 box dividers, blanks as dots:
//
//	+-------+-------+-------+
//	| 5 3 . | . 7 . | . . . |
//	...
func (g Grid) String() string {
	var b strings.Builder
	for row := 0; row < Size; row++ {
		if row%boxSize == 0 {
			b.WriteString("+-------+-------+-------+\n")
		}
		for col := 0; col < Size; col++ {
			if col%boxSize == 0 {
				b.WriteString("| ")
			}
			d := g[row*Size+col]
			if d == 0 {
				b.WriteString(". ")
			} else {
				b.WriteByte(byte('0' + d))
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+-------+-------+-------+")

	return b.String()
}
