package visualizer

import (
	"io"
	"strings"
	"testing"

	"sudoku_solve_go/internal/types"
)

func TestApplyTracksBoardState(t *testing.T) {
	grid := types.NewGrid()
	grid[0][0] = 5
	v := New(grid, io.Discard)

	v.Apply(types.SolveStep{Row: 1, Col: 1, Value: 7, Kind: types.StepAttempt})
	if v.board[1][1] != 7 || v.marks[1][1] != types.StepAttempt {
		t.Fatalf("attempt not applied: value=%d mark=%q", v.board[1][1], v.marks[1][1])
	}

	v.Apply(types.SolveStep{Row: 1, Col: 1, Value: 0, Kind: types.StepBacktrack})
	if v.board[1][1] != 0 || v.marks[1][1] != types.StepBacktrack {
		t.Fatalf("backtrack not applied: value=%d mark=%q", v.board[1][1], v.marks[1][1])
	}

	v.Apply(types.SolveStep{Row: 1, Col: 1, Kind: types.StepClear})
	if v.marks[1][1] != "" {
		t.Fatalf("clear left mark %q", v.marks[1][1])
	}

	v.Apply(types.SolveStep{Row: -1, Col: -1, Kind: types.StepSuccess})
	if !strings.Contains(v.status, "solution found") {
		t.Fatalf("terminal step status = %q", v.status)
	}
}

func TestRenderShowsCluesAndHoles(t *testing.T) {
	grid := types.NewGrid()
	grid[0][0] = 5
	out := New(grid, io.Discard).Render()

	if !strings.Contains(out, "5") {
		t.Error("clue missing from render")
	}
	if !strings.Contains(out, ".") {
		t.Error("empty cells missing from render")
	}
	if lines := strings.Count(out, "\n"); lines < types.Size {
		t.Errorf("render has %d lines, want at least %d", lines, types.Size)
	}
}
