package solver

import (
	"math/bits"

	"sudoku_solve_go/internal/types"
)

// digitSet is a bitmask of candidate digits; bit n (1-9) set means
// digit n is still available.
type digitSet uint16

const allDigits digitSet = 0x3fe // bits 1..9

func (s digitSet) has(v int) bool {
	return s&(1<<uint(v)) != 0
}

func (s digitSet) add(v int) digitSet {
	return s | 1<<uint(v)
}

func (s digitSet) remove(v int) digitSet {
	if v < 1 || v > 9 {
		return s
	}
	return s &^ (1 << uint(v))
}

func (s digitSet) count() int {
	return bits.OnesCount16(uint16(s))
}

// cellDomain tracks the remaining candidates for one empty cell and
// its degree: the number of empty peer cells. A peer inside both the
// cell's row (or column) and box is counted once per group, so the
// three box cells on the same row contribute twice.
type cellDomain struct {
	set    digitSet
	degree int
}

// domainTable holds one cellDomain per grid position. Filled cells
// carry a zero entry. The table is a plain value, so a snapshot is a
// single assignment and restore is the 81-cell copy-back.
type domainTable [types.Size][types.Size]cellDomain

func newDomainTable(g *types.Grid) domainTable {
	var t domainTable
	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			if g[row][col] == 0 {
				t[row][col] = cellDomain{
					set:    candidatesFor(g, row, col),
					degree: degreeOf(g, row, col),
				}
			}
		}
	}
	return t
}

func candidatesFor(g *types.Grid, row, col int) digitSet {
	set := allDigits
	for i := 0; i < types.Size; i++ {
		set = set.remove(g[row][i])
		set = set.remove(g[i][col])
	}
	boxRow := row / types.BoxSize * types.BoxSize
	boxCol := col / types.BoxSize * types.BoxSize
	for i := boxRow; i < boxRow+types.BoxSize; i++ {
		for j := boxCol; j < boxCol+types.BoxSize; j++ {
			set = set.remove(g[i][j])
		}
	}
	return set
}

func degreeOf(g *types.Grid, row, col int) int {
	degree := 0
	for j := 0; j < types.Size; j++ {
		if j != col && g[row][j] == 0 {
			degree++
		}
	}
	for i := 0; i < types.Size; i++ {
		if i != row && g[i][col] == 0 {
			degree++
		}
	}
	boxRow := row / types.BoxSize * types.BoxSize
	boxCol := col / types.BoxSize * types.BoxSize
	for i := boxRow; i < boxRow+types.BoxSize; i++ {
		for j := boxCol; j < boxCol+types.BoxSize; j++ {
			if (i != row || j != col) && g[i][j] == 0 {
				degree++
			}
		}
	}
	return degree
}

// eliminate removes value from the domain of every empty peer of
// (row, col) and decrements their degrees, then clears the entry of
// the placed cell itself. It reports false when some peer is left with
// no candidates, which tells the engine to undo without recursing.
// The grid must already hold value at (row, col). Cells that are peers
// through two groups are updated by both passes.
func (t *domainTable) eliminate(g *types.Grid, row, col, value int) bool {
	ok := true
	touch := func(r, c int) {
		if g[r][c] != 0 {
			return
		}
		t[r][c].set = t[r][c].set.remove(value)
		t[r][c].degree--
		if t[r][c].set == 0 {
			ok = false
		}
	}
	for i := 0; i < types.Size; i++ {
		touch(row, i)
		touch(i, col)
	}
	boxRow := row / types.BoxSize * types.BoxSize
	boxCol := col / types.BoxSize * types.BoxSize
	for i := boxRow; i < boxRow+types.BoxSize; i++ {
		for j := boxCol; j < boxCol+types.BoxSize; j++ {
			touch(i, j)
		}
	}
	t[row][col] = cellDomain{}
	return ok
}

// restore overwrites the live table with a snapshot taken before a
// trial. The full copy-back keeps forward elimination and undo from
// ever drifting apart.
func (t *domainTable) restore(snapshot domainTable) {
	*t = snapshot
}
