// Package visualizer renders a Sudoku board and the solver's step
// stream as colored text for a terminal. It keeps its own copy of the
// board and updates it from the steps it is fed, so the caller decides
// the pacing and the solver's grid is never read mid-search.
package visualizer

import (
	"fmt"
	"io"
	"strings"

	"sudoku_solve_go/internal/types"
)

// ANSI backgrounds per cell state.
const (
	colorReset     = "\033[0m"
	colorBold      = "\033[1m"
	colorAttempt   = "\033[43m" // yellow
	colorSuccess   = "\033[42m" // green
	colorBacktrack = "\033[41m" // red
)

// Visualizer tracks the board as the step stream describes it.
type Visualizer struct {
	board  types.Grid
	fixed  [types.Size][types.Size]bool
	marks  [types.Size][types.Size]types.StepKind
	status string
	out    io.Writer
}

func New(start *types.Grid, out io.Writer) *Visualizer {
	v := &Visualizer{board: *start, out: out}
	for i := 0; i < types.Size; i++ {
		for j := 0; j < types.Size; j++ {
			v.fixed[i][j] = start[i][j] != 0
		}
	}
	return v
}

// Apply folds one solve step into the board state, mirroring how the
// game UI translates step kinds into visual effects.
func (v *Visualizer) Apply(step types.SolveStep) {
	if step.Terminal() {
		v.status = "solution found, unwinding"
		return
	}
	switch step.Kind {
	case types.StepAttempt:
		v.board[step.Row][step.Col] = step.Value
		v.marks[step.Row][step.Col] = types.StepAttempt
		v.status = fmt.Sprintf("trying %d at (%d,%d)", step.Value, step.Row+1, step.Col+1)
	case types.StepSuccess:
		v.board[step.Row][step.Col] = step.Value
		v.marks[step.Row][step.Col] = types.StepSuccess
		v.status = fmt.Sprintf("placed %d at (%d,%d)", step.Value, step.Row+1, step.Col+1)
	case types.StepBacktrack:
		v.board[step.Row][step.Col] = 0
		v.marks[step.Row][step.Col] = types.StepBacktrack
		v.status = fmt.Sprintf("backtracking from (%d,%d)", step.Row+1, step.Col+1)
	case types.StepClear:
		v.marks[step.Row][step.Col] = ""
	}
}

// Render returns the board as box-drawn text with per-state colors and
// the current status line.
func (v *Visualizer) Render() string {
	var b strings.Builder
	v.writeBorder(&b)
	for i := 0; i < types.Size; i++ {
		b.WriteString("│ ")
		for j := 0; j < types.Size; j++ {
			v.writeCell(&b, i, j)
			b.WriteByte(' ')
			if (j+1)%types.BoxSize == 0 && j < types.Size-1 {
				b.WriteString("│ ")
			}
		}
		b.WriteString("│\n")
		if (i+1)%types.BoxSize == 0 && i < types.Size-1 {
			v.writeBorder(&b)
		}
	}
	v.writeBorder(&b)
	if v.status != "" {
		b.WriteString(v.status)
		b.WriteByte('\n')
	}
	return b.String()
}

// Print clears the terminal and draws the current board.
func (v *Visualizer) Print() {
	fmt.Fprint(v.out, "\033[H\033[2J")
	fmt.Fprint(v.out, v.Render())
}

func (v *Visualizer) writeCell(b *strings.Builder, row, col int) {
	var color string
	switch v.marks[row][col] {
	case types.StepAttempt:
		color = colorAttempt
	case types.StepSuccess:
		color = colorSuccess
	case types.StepBacktrack:
		color = colorBacktrack
	}
	if v.fixed[row][col] {
		color += colorBold
	}
	cell := "."
	if v.board[row][col] != 0 {
		cell = fmt.Sprint(v.board[row][col])
	}
	if color == "" {
		b.WriteString(cell)
		return
	}
	b.WriteString(color)
	b.WriteString(cell)
	b.WriteString(colorReset)
}

func (v *Visualizer) writeBorder(b *strings.Builder) {
	b.WriteString("├")
	for i := 0; i < types.Size; i++ {
		b.WriteString("──")
		if (i+1)%types.BoxSize == 0 && i < types.Size-1 {
			b.WriteString("─┼")
		}
	}
	b.WriteString("─┤\n")
}
