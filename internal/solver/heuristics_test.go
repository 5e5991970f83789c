package solver

import (
	"math/rand"
	"testing"

	"sudoku_solve_go/internal/types"
)

func TestNextCellPrefersFewestCandidates(t *testing.T) {
	grid, err := types.ParseGrid(`
		12345678.
		.........
		.........
		.........
		.........
		.........
		.........
		.........
		.........
	`)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	table := newDomainTable(grid)

	// (0,8) is the only cell with a single candidate; every seed must
	// pick it.
	for seed := int64(0); seed < 10; seed++ {
		row, col, ok := nextCell(grid, &table, rand.New(rand.NewSource(seed)))
		if !ok || row != 0 || col != 8 {
			t.Fatalf("seed %d: nextCell = (%d,%d,%v), want (0,8,true)", seed, row, col, ok)
		}
	}
}

func TestNextCellBreaksTiesByDegree(t *testing.T) {
	grid := types.NewGrid()
	for col := 0; col < 7; col++ {
		grid[0][col] = col + 1
	}
	// Shrinks the degree of (0,8) without touching its candidates:
	// 3 is already excluded by row 0.
	grid[5][8] = 3

	table := newDomainTable(grid)
	a, b := table[0][7], table[0][8]
	if a.set.count() != 2 || b.set.count() != 2 {
		t.Fatalf("setup broken: counts %d and %d, want 2 and 2", a.set.count(), b.set.count())
	}
	if a.degree <= b.degree {
		t.Fatalf("setup broken: degrees %d and %d, want (0,7) higher", a.degree, b.degree)
	}

	for seed := int64(0); seed < 10; seed++ {
		row, col, ok := nextCell(grid, &table, rand.New(rand.NewSource(seed)))
		if !ok || row != 0 || col != 7 {
			t.Fatalf("seed %d: nextCell = (%d,%d,%v), want (0,7,true)", seed, row, col, ok)
		}
	}
}

func TestNextCellNoneOnFullGrid(t *testing.T) {
	grid, err := types.ParseGrid(completeGrid)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	table := newDomainTable(grid)
	if _, _, ok := nextCell(grid, &table, rand.New(rand.NewSource(0))); ok {
		t.Fatal("nextCell found a cell on a full grid")
	}
}

func TestConstrainingCountEmptyGrid(t *testing.T) {
	grid := types.NewGrid()
	table := newDomainTable(grid)

	// 8 row + 8 column + 8 box peers all list every digit; the box
	// cells sharing the row or column are counted twice.
	if got := constrainingCount(grid, &table, 0, 0, 5); got != 24 {
		t.Fatalf("constrainingCount = %d, want 24", got)
	}
}

func TestNextValuePrefersLeastConstraining(t *testing.T) {
	grid := types.NewGrid()
	for row := 1; row <= 7; row++ {
		grid[row][0] = row
	}
	// Knocks 9 out of the domains of three box/column peers of (0,0)
	// so 9 constrains fewer cells than 8.
	grid[4][1] = 9

	table := newDomainTable(grid)
	opts := table[0][0].set
	if !opts.has(8) || !opts.has(9) || opts.count() != 2 {
		t.Fatalf("setup broken: (0,0) domain %b", opts)
	}
	c8 := constrainingCount(grid, &table, 0, 0, 8)
	c9 := constrainingCount(grid, &table, 0, 0, 9)
	if c9 >= c8 {
		t.Fatalf("setup broken: counts 8=%d 9=%d, want 9 lower", c8, c9)
	}

	for seed := int64(0); seed < 10; seed++ {
		v, ok := nextValue(grid, &table, 0, 0, rand.New(rand.NewSource(seed)))
		if !ok || v != 9 {
			t.Fatalf("seed %d: nextValue = (%d,%v), want (9,true)", seed, v, ok)
		}
	}
}

func TestNextValueNoneOnEmptyDomain(t *testing.T) {
	grid := types.NewGrid()
	table := newDomainTable(grid)
	table[3][3].set = 0

	if _, ok := nextValue(grid, &table, 3, 3, rand.New(rand.NewSource(0))); ok {
		t.Fatal("nextValue returned a value from an empty domain")
	}
}
