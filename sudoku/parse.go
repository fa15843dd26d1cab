package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a puzzle from r: nine rows of nine cells, where '1'..'9'
// is a pre-filled digit and '.' or '0' a blank. Blank-only lines are
// skipped, so puzzles may be grouped with separating newlines.
//
// Errors: ErrPuzzleShort if fewer than nine rows are present,
// ErrRowLength for a malformed row, ErrBadCell for a stray character —
// the two latter wrapped with the offending row number.
func Parse(r io.Reader) (Grid, error) {
	var g Grid
	scanner := bufio.NewScanner(r)

	row := 0
	for scanner.Scan() && row < Size {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(line) != Size {
			return Grid{}, fmt.Errorf("row %d: %w", row+1, ErrRowLength)
		}
		for col := 0; col < Size; col++ {
			switch c := line[col]; {
			case c >= '1' && c <= '9':
				g[row*Size+col] = int(c - '0')
			case c == '.' || c == '0':
				g[row*Size+col] = 0
			default:
				return Grid{}, fmt.Errorf("row %d: %w", row+1, ErrBadCell)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Grid{}, fmt.Errorf("sudoku: reading puzzle: %w", err)
	}
	if row < Size {
		return Grid{}, ErrPuzzleShort
	}

	return g, nil
}
