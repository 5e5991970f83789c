package solver

import (
	"math/rand"

	"sudoku_solve_go/internal/types"
)

// nextCell picks the empty cell to branch on: fewest remaining
// candidates first (MRV), ties broken by highest degree, remaining
// ties broken uniformly at random. ok is false when the grid is fully
// assigned, which is the search's success base case.
func nextCell(g *types.Grid, t *domainTable, rng *rand.Rand) (row, col int, ok bool) {
	minOptions := 10
	maxDegree := -1
	var candidates [][2]int
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if g[r][c] != 0 {
				continue
			}
			n := t[r][c].set.count()
			d := t[r][c].degree
			switch {
			case n < minOptions || (n == minOptions && d > maxDegree):
				minOptions = n
				maxDegree = d
				candidates = append(candidates[:0], [2]int{r, c})
			case n == minOptions && d == maxDegree:
				candidates = append(candidates, [2]int{r, c})
			}
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}
	pick := candidates[rng.Intn(len(candidates))]
	return pick[0], pick[1], true
}

// nextValue picks the candidate digit for (row, col) that appears in
// the fewest peer domains (LCV), ties broken uniformly at random. ok
// is false when the cell has no candidates left, which triggers a
// backtrack.
func nextValue(g *types.Grid, t *domainTable, row, col int, rng *rand.Rand) (value int, ok bool) {
	opts := t[row][col].set
	if opts == 0 {
		return 0, false
	}
	minCount := -1
	var candidates []int
	for v := 1; v <= 9; v++ {
		if !opts.has(v) {
			continue
		}
		n := constrainingCount(g, t, row, col, v)
		switch {
		case minCount < 0 || n < minCount:
			minCount = n
			candidates = append(candidates[:0], v)
		case n == minCount:
			candidates = append(candidates, v)
		}
	}
	return candidates[rng.Intn(len(candidates))], true
}

// constrainingCount sums, over the row, column, and box passes, the
// empty peers whose domain still lists value. Peers shared between a
// line and the box are counted by both passes, matching degreeOf.
func constrainingCount(g *types.Grid, t *domainTable, row, col, value int) int {
	n := 0
	for i := 0; i < types.Size; i++ {
		if i != col && g[row][i] == 0 && t[row][i].set.has(value) {
			n++
		}
		if i != row && g[i][col] == 0 && t[i][col].set.has(value) {
			n++
		}
	}
	boxRow := row / types.BoxSize * types.BoxSize
	boxCol := col / types.BoxSize * types.BoxSize
	for i := boxRow; i < boxRow+types.BoxSize; i++ {
		for j := boxCol; j < boxCol+types.BoxSize; j++ {
			if (i != row || j != col) && g[i][j] == 0 && t[i][j].set.has(value) {
				n++
			}
		}
	}
	return n
}
