package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sudoku_solve_go/db"
	"sudoku_solve_go/internal/generator"
	"sudoku_solve_go/internal/solver"
	"sudoku_solve_go/internal/types"
	"sudoku_solve_go/internal/visualizer"
)

var log = logrus.New()

// stepDelay paces the animation per step kind.
var stepDelay = map[types.StepKind]time.Duration{
	types.StepAttempt:   100 * time.Millisecond,
	types.StepSuccess:   50 * time.Millisecond,
	types.StepBacktrack: 150 * time.Millisecond,
	types.StepClear:     150 * time.Millisecond,
}

func main() {
	root := &cobra.Command{
		Use:          "sudoku",
		Short:        "Generate and solve Sudoku puzzles",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCommand(), newSolveCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newGenerateCommand() *cobra.Command {
	var (
		difficulty string
		seed       int64
		outFile    string
		upload     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			gen := generator.NewClassicGenerator(seed)
			if err := gen.SetDifficulty(types.Difficulty(difficulty)); err != nil {
				return err
			}

			start := time.Now()
			puzzle, err := gen.Generate()
			if err != nil {
				return err
			}
			log.Infof("generated %s puzzle with %d clues in %v (seed %d)",
				puzzle.Difficulty, puzzle.Grid.CountClues(), time.Since(start), seed)

			vis := visualizer.New(&puzzle.Grid, cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), vis.Render())

			if outFile != "" {
				data, err := puzzle.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to serialize puzzle: %w", err)
				}
				if err := os.WriteFile(outFile, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outFile, err)
				}
				log.Infof("wrote %s", outFile)
			}

			if upload {
				id, err := db.UploadPuzzle(puzzle)
				if err != nil {
					return err
				}
				log.Infof("uploaded puzzle as %s", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(types.Medium), "easy, medium, hard, or expert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the puzzle as JSON to this file")
	cmd.Flags().BoolVar(&upload, "upload", false, "store the puzzle in PocketBase")
	return cmd
}

func newSolveCommand() *cobra.Command {
	var (
		seed    int64
		animate bool
	)

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a puzzle, animating the search step by step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(args[0])
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			stream, err := solver.NewStream(grid, seed)
			if err != nil {
				return err
			}

			vis := visualizer.New(grid, cmd.OutOrStdout())
			steps := 0
			for {
				step, ok := stream.Next()
				if !ok {
					break
				}
				steps++
				if animate {
					vis.Apply(step)
					vis.Print()
					time.Sleep(stepDelay[step.Kind])
				}
			}

			if !stream.Solved() {
				log.Errorf("no solution (%d steps)", steps)
				return fmt.Errorf("puzzle has no solution")
			}
			if !animate {
				vis = visualizer.New(grid, cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), vis.Render())
			}
			log.Infof("solved in %d steps (seed %d)", steps, seed)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&animate, "animate", true, "animate the search in the terminal")
	return cmd
}

// readGrid loads a puzzle from a JSON puzzle file or a 9-line text
// grid.
func readGrid(path string) (*types.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if puzzle, err := types.PuzzleFromJSON(data); err == nil && puzzle.Grid.CountClues() > 0 {
		return &puzzle.Grid, nil
	}
	return types.ParseGrid(string(data))
}
