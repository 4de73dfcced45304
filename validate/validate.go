// Command validate checks every puzzle configuration JSON file in a configs
// directory. It checks:
//   - JSON structure and required fields
//   - Board size bounds and piece placement (ids, bounds, overlap)
//   - Presence of at least one bunny and at least one goal cell
//   - Goal cells within the board
//   - Required message keys
//   - Optionally (-probe): BFS solvability of the starting board
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jumpin-puzzle/jumpin/game/engine"
)

var (
	configsDir  = flag.String("configs-dir", "configs", "directory containing puzzle configurations")
	probe       = flag.Bool("probe", false, "run a BFS solvability probe on each valid config")
	probeBudget = flag.Int("probe-budget", 500000, "node expansion budget for the solvability probe")
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Notes contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File  string
	Valid bool
	Notes []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string, runProbe bool, budget int) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(filePath),
		Valid: true,
		Notes: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if config.Name == "" {
		result.fail("Missing required field: name")
	}
	if config.Description == "" {
		result.fail("Missing required field: description")
	}

	if config.BoardSize < engine.MinBoardSize || config.BoardSize > engine.MaxBoardSize {
		result.fail("board_size must be between %d and %d, got %d",
			engine.MinBoardSize, engine.MaxBoardSize, config.BoardSize)
	}

	if len(config.Bunnies) == 0 {
		result.fail("Must have at least 1 bunny")
	}
	if len(config.GoalCells) == 0 {
		result.fail("Must have at least 1 goal cell")
	}

	for _, goal := range config.GoalCells {
		if goal.X < 0 || goal.Y < 0 || goal.X >= config.BoardSize || goal.Y >= config.BoardSize {
			result.fail("Goal cell (%d,%d) is outside the board", goal.X, goal.Y)
		}
	}

	// Required messages
	requiredMessages := map[string]string{
		"welcome":      config.Messages.Welcome,
		"solved":       config.Messages.Solved,
		"illegal_move": config.Messages.IllegalMove,
		"no_solution":  config.Messages.NoSolution,
	}
	for key, value := range requiredMessages {
		if value == "" {
			result.fail("Missing required message: %s", key)
		}
	}

	// Piece placement: ids, bounds, and overlap are enforced by board
	// construction.
	board, err := engine.BoardFromConfig(&config)
	if err != nil {
		result.fail("Invalid piece placement: %v", err)
	}

	if !result.Valid {
		return result
	}

	result.info("✓ Name: %s", config.Name)
	result.info("✓ Board: %dx%d", config.BoardSize, config.BoardSize)
	result.info("✓ Mushrooms: %d", len(config.Mushrooms))
	result.info("✓ Bunnies: %d", len(config.Bunnies))
	result.info("✓ Foxes: %d", len(config.Foxes))
	result.info("✓ Goal cells: %d", len(config.GoalCells))

	if runProbe {
		solver := engine.NewSolver(engine.BreadthFirst)
		solver.NodeBudget = budget
		solution, err := solver.Solve(board)
		switch {
		case err == nil:
			result.info("✓ Solvable in %d moves (%d states visited)",
				len(solution.Moves), solution.StatesVisited)
		case err == engine.ErrSearchAborted:
			result.info("? Solvability unknown: probe budget of %d expansions exhausted", budget)
		default:
			result.fail("Not solvable from the starting board")
		}
	}

	return result
}

// main scans the configs directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*configsDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", *configsDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file, *probe, *probeBudget)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, note := range result.Notes {
				fmt.Println("  " + note)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, note := range result.Notes {
				if !strings.HasPrefix(note, "✓") {
					fmt.Println("  ❌ " + note)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
