// Package generator produces classic 9x9 Sudoku puzzles. A board is
// built by randomized backtracking fill, thinned according to the
// requested difficulty, and then verified solvable with the solver
// before being handed out.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"sudoku_solve_go/internal/solver"
	"sudoku_solve_go/internal/types"
)

// SudokuGenerator is the board-generation contract consumed by callers.
type SudokuGenerator interface {
	Generate() (*types.Puzzle, error)
	SetDifficulty(d types.Difficulty) error
}

// removalFraction maps difficulty to the share of cells emptied.
// Easy: 40%, Medium: 50%, Hard: 60%, Expert: 70%.
var removalFraction = map[types.Difficulty]float64{
	types.Easy:   0.40,
	types.Medium: 0.50,
	types.Hard:   0.60,
	types.Expert: 0.70,
}

// ClassicGenerator implements SudokuGenerator for standard boards.
type ClassicGenerator struct {
	difficulty types.Difficulty
	seed       int64
	rng        *rand.Rand
	maxRetries int
}

func NewClassicGenerator(seed int64) *ClassicGenerator {
	return &ClassicGenerator{
		difficulty: types.Medium,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
		maxRetries: 7,
	}
}

func (g *ClassicGenerator) SetDifficulty(d types.Difficulty) error {
	if _, ok := removalFraction[d]; !ok {
		return fmt.Errorf("unknown difficulty %q", d)
	}
	g.difficulty = d
	return nil
}

// Generate builds a puzzle. Boards whose step stream never reaches
// terminal success are discarded and regenerated.
func (g *ClassicGenerator) Generate() (*types.Puzzle, error) {
	for retries := 0; retries < g.maxRetries; retries++ {
		var solution types.Grid
		if !g.fill(&solution, 0) {
			continue
		}

		puzzle := solution
		g.removeClues(&puzzle)

		check := puzzle
		solved, err := solver.Solve(&check, g.rng.Int63())
		if err != nil || !solved {
			continue
		}

		return &types.Puzzle{
			Grid:       puzzle,
			Solution:   solution,
			Difficulty: g.difficulty,
			Seed:       g.seed,
		}, nil
	}
	return nil, errors.New("failed to generate valid puzzle")
}

// fill completes the grid by scanning positions in order and trying
// digits in random order at each empty cell.
func (g *ClassicGenerator) fill(grid *types.Grid, pos int) bool {
	if pos == types.Size*types.Size {
		return true
	}
	row, col := pos/types.Size, pos%types.Size
	if grid[row][col] != 0 {
		return g.fill(grid, pos+1)
	}
	for _, num := range g.shuffledDigits() {
		if solver.IsLegal(grid, row, col, num) {
			grid[row][col] = num
			if g.fill(grid, pos+1) {
				return true
			}
			grid[row][col] = 0
		}
	}
	return false
}

func (g *ClassicGenerator) shuffledDigits() []int {
	nums := make([]int, types.Size)
	for i := range nums {
		nums[i] = i + 1
	}
	g.rng.Shuffle(len(nums), func(i, j int) {
		nums[i], nums[j] = nums[j], nums[i]
	})
	return nums
}

func (g *ClassicGenerator) removeClues(grid *types.Grid) {
	cells := g.rng.Perm(types.Size * types.Size)
	remove := int(removalFraction[g.difficulty] * float64(types.Size*types.Size))
	for i := 0; i < remove; i++ {
		row, col := cells[i]/types.Size, cells[i]%types.Size
		grid[row][col] = 0
	}
}
