package solver

import (
	"math/rand"

	"sudoku_solve_go/internal/types"
)

type frameState int

const (
	stateSelectCell frameState = iota
	stateSelectValue
	statePlace
	stateAwaitChild
)

// frame is one level of the search, the explicit replacement for a
// recursive call. It remembers which cell it branched on, the value
// currently under trial, and the domain snapshot to restore if that
// trial fails.
type frame struct {
	state    frameState
	row, col int
	value    int
	snapshot domainTable
	childOK  bool
}

// Stream is the lazily produced sequence of solve steps for one grid.
// The search runs only while Next is being called: each pull advances
// the engine until the next event is ready, then suspends. The
// sequence is finite and cannot be restarted; create a new Stream to
// solve again.
//
// The grid passed to NewStream is mutated in place. When the stream is
// exhausted it holds a complete solution only if a terminal success
// step was emitted; callers must check Solved, not grid fullness.
type Stream struct {
	grid    *types.Grid
	table   domainTable
	rng     *rand.Rand
	stack   []*frame
	pending []types.SolveStep
	solved  bool
	done    bool
}

// NewStream validates the grid and prepares a search over it. The seed
// drives heuristic tie-breaking only; two streams over equal grids
// with equal seeds emit identical steps.
func NewStream(g *types.Grid, seed int64) (*Stream, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}
	s := &Stream{
		grid:  g,
		table: newDomainTable(g),
		rng:   rand.New(rand.NewSource(seed)),
		stack: []*frame{{state: stateSelectCell}},
	}
	return s, nil
}

// Next returns the next solve step. ok is false once the search has
// finished, whether or not a solution was found.
func (s *Stream) Next() (step types.SolveStep, ok bool) {
	for len(s.pending) == 0 && !s.done {
		s.advance()
	}
	if len(s.pending) == 0 {
		return types.SolveStep{}, false
	}
	step = s.pending[0]
	s.pending = s.pending[1:]
	return step, true
}

// Solved reports whether the search reached a complete assignment.
// Meaningful once Next has returned ok=false.
func (s *Stream) Solved() bool {
	return s.solved
}

func (s *Stream) emit(row, col, value int, kind types.StepKind) {
	s.pending = append(s.pending, types.SolveStep{Row: row, Col: col, Value: value, Kind: kind})
}

// advance performs one state-machine transition on the top frame.
func (s *Stream) advance() {
	if len(s.stack) == 0 {
		s.done = true
		return
	}
	f := s.stack[len(s.stack)-1]
	switch f.state {
	case stateSelectCell:
		row, col, ok := nextCell(s.grid, &s.table, s.rng)
		if !ok {
			s.emit(-1, -1, 0, types.StepSuccess)
			s.ret(true)
			return
		}
		f.row, f.col = row, col
		f.state = stateSelectValue

	case stateSelectValue:
		v, ok := nextValue(s.grid, &s.table, f.row, f.col, s.rng)
		if !ok {
			s.emit(f.row, f.col, 0, types.StepBacktrack)
			s.emit(f.row, f.col, 0, types.StepClear)
			s.ret(false)
			return
		}
		if !IsLegal(s.grid, f.row, f.col, v) {
			// Stale candidate; drop it and pick again.
			s.table[f.row][f.col].set = s.table[f.row][f.col].set.remove(v)
			return
		}
		f.value = v
		s.emit(f.row, f.col, v, types.StepAttempt)
		f.state = statePlace

	case statePlace:
		f.snapshot = s.table
		s.grid[f.row][f.col] = f.value
		if !s.table.eliminate(s.grid, f.row, f.col, f.value) {
			// Forward checking emptied a peer's domain: dead end
			// before recursing, no event.
			s.undo(f)
			f.state = stateSelectValue
			return
		}
		f.state = stateAwaitChild
		s.stack = append(s.stack, &frame{state: stateSelectCell})

	case stateAwaitChild:
		if f.childOK {
			s.emit(f.row, f.col, f.value, types.StepSuccess)
			s.ret(true)
			return
		}
		s.undo(f)
		f.state = stateSelectValue
	}
}

// undo restores the domain snapshot, clears the trial cell, and
// removes the failed value from the cell's own domain so the value
// loop never re-picks it.
func (s *Stream) undo(f *frame) {
	s.table.restore(f.snapshot)
	s.grid[f.row][f.col] = 0
	s.table[f.row][f.col].set = s.table[f.row][f.col].set.remove(f.value)
}

// ret pops the top frame and hands its result to the parent, or ends
// the search at the root.
func (s *Stream) ret(ok bool) {
	s.stack = s.stack[:len(s.stack)-1]
	if len(s.stack) == 0 {
		s.solved = ok
		s.done = true
		return
	}
	s.stack[len(s.stack)-1].childOK = ok
}

// Solve runs the search to completion, discarding intermediate steps.
// It reports whether a solution was found; on true the grid holds the
// complete assignment.
func Solve(g *types.Grid, seed int64) (bool, error) {
	s, err := NewStream(g, seed)
	if err != nil {
		return false, err
	}
	for {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	return s.Solved(), nil
}
