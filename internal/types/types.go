package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Size is the board edge length; boxes are BoxSize x BoxSize.
const (
	Size    = 9
	BoxSize = 3
)

// Grid is a 9x9 Sudoku board. 0 marks an empty cell.
type Grid [Size][Size]int

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Clone returns a value copy of the grid.
func (g *Grid) Clone() *Grid {
	g2 := *g
	return &g2
}

// Full reports whether every cell holds a nonzero value.
func (g *Grid) Full() bool {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if g[i][j] == 0 {
				return false
			}
		}
	}
	return true
}

// CountClues returns the number of nonzero cells.
func (g *Grid) CountClues() int {
	n := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if g[i][j] != 0 {
				n++
			}
		}
	}
	return n
}

// ToJSON converts the grid to JSON bytes.
func (g *Grid) ToJSON() ([]byte, error) {
	return json.Marshal(g)
}

// GridFromJSON creates a Grid from JSON bytes.
func GridFromJSON(data []byte) (*Grid, error) {
	var grid Grid
	err := json.Unmarshal(data, &grid)
	return &grid, err
}

// ParseGrid reads a grid from 9 lines of 9 characters. Digits 1-9 are
// clues; '0' and '.' are empty cells. Blank lines are skipped.
func ParseGrid(s string) (*Grid, error) {
	var grid Grid
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row >= Size {
			return nil, errors.New("too many rows in grid text")
		}
		if len(line) != Size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row+1, len(line), Size)
		}
		for col, ch := range line {
			switch {
			case ch == '.' || ch == '0':
				grid[row][col] = 0
			case ch >= '1' && ch <= '9':
				grid[row][col] = int(ch - '0')
			default:
				return nil, fmt.Errorf("invalid cell %q at row %d col %d", ch, row+1, col+1)
			}
		}
		row++
	}
	if row != Size {
		return nil, fmt.Errorf("got %d rows, want %d", row, Size)
	}
	return &grid, nil
}

// String renders the grid as 9 lines of 9 characters with '.' for
// empty cells, the inverse of ParseGrid.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if g[i][j] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + g[i][j]))
			}
		}
		if i < Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// StepKind classifies a solve step for the consumer.
type StepKind string

const (
	StepAttempt   StepKind = "attempt"   // trying a value at a cell
	StepSuccess   StepKind = "success"   // value confirmed, or terminal success at (-1,-1)
	StepBacktrack StepKind = "backtrack" // no candidate works, cell undone
	StepClear     StepKind = "clear"     // previous backtrack highlight may be removed
)

// SolveStep is one event of the solver's step stream.
type SolveStep struct {
	Row   int      `json:"row"`
	Col   int      `json:"col"`
	Value int      `json:"value"`
	Kind  StepKind `json:"kind"`
}

// Terminal reports whether the step is the "assignment complete"
// signal emitted once when the search first fills the grid.
func (s SolveStep) Terminal() bool {
	return s.Kind == StepSuccess && s.Row == -1 && s.Col == -1
}

// Difficulty selects how many clues a generated puzzle keeps.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// Puzzle pairs a generated board with its full solution.
type Puzzle struct {
	Grid       Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	Difficulty Difficulty `json:"difficulty"`
	Seed       int64      `json:"seed"`
}

// ToJSON converts the puzzle to JSON bytes.
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// PuzzleFromJSON creates a Puzzle from JSON bytes.
func PuzzleFromJSON(data []byte) (*Puzzle, error) {
	var puzzle Puzzle
	err := json.Unmarshal(data, &puzzle)
	return &puzzle, err
}
