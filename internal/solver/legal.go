// Package solver implements a backtracking Sudoku search with forward
// checking and MRV/LCV heuristics. Solving is exposed as a lazy,
// pull-based stream of steps so a caller can animate the search one
// event at a time.
package solver

import (
	"errors"
	"fmt"

	"sudoku_solve_go/internal/types"
)

// ErrInvalidGrid is returned when a starting grid already holds the
// same value twice in a row, column, or box.
var ErrInvalidGrid = errors.New("invalid starting grid")

// IsLegal reports whether value may occupy (row, col): no other cell
// in the same row, column, or 3x3 box currently holds value.
func IsLegal(g *types.Grid, row, col, value int) bool {
	for i := 0; i < types.Size; i++ {
		if i != col && g[row][i] == value {
			return false
		}
		if i != row && g[i][col] == value {
			return false
		}
	}
	boxRow := row / types.BoxSize * types.BoxSize
	boxCol := col / types.BoxSize * types.BoxSize
	for i := boxRow; i < boxRow+types.BoxSize; i++ {
		for j := boxCol; j < boxCol+types.BoxSize; j++ {
			if (i != row || j != col) && g[i][j] == value {
				return false
			}
		}
	}
	return true
}

// Validate checks the peer invariant for every placed value. It is the
// fail-fast guard run before a search starts.
func Validate(g *types.Grid) error {
	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			v := g[row][col]
			if v < 0 || v > 9 {
				return fmt.Errorf("%w: value %d at row %d col %d out of range", ErrInvalidGrid, v, row+1, col+1)
			}
			if v != 0 && !IsLegal(g, row, col, v) {
				return fmt.Errorf("%w: duplicate %d at row %d col %d", ErrInvalidGrid, v, row+1, col+1)
			}
		}
	}
	return nil
}
