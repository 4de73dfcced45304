package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PiecePlacement positions a single-cell piece in a puzzle definition.
type PiecePlacement struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// FoxPlacement positions a fox head and its body orientation.
type FoxPlacement struct {
	ID          string    `json:"id"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Orientation Direction `json:"orientation"`
}

// PuzzleConfig is a puzzle definition loaded from JSON.
type PuzzleConfig struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	BoardSize   int              `json:"board_size"`
	Mushrooms   []PiecePlacement `json:"mushrooms"`
	Bunnies     []PiecePlacement `json:"bunnies"`
	Foxes       []FoxPlacement   `json:"foxes"`
	GoalCells   []Position       `json:"goal_cells"`
	Messages    struct {
		Welcome     string `json:"welcome"`
		Solved      string `json:"solved"`
		IllegalMove string `json:"illegal_move"`
		NoSolution  string `json:"no_solution"`
	} `json:"messages"`
}

// ValidatePuzzleConfig validates a puzzle definition for correctness. Piece
// placement invariants are checked by constructing the board, so a valid
// config is guaranteed to produce a valid initial state.
func ValidatePuzzleConfig(config *PuzzleConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}
	if len(config.GoalCells) == 0 {
		return fmt.Errorf("config validation: at least one goal cell is required")
	}
	if len(config.Bunnies) == 0 {
		return fmt.Errorf("config validation: at least one bunny is required")
	}
	if _, err := BoardFromConfig(config); err != nil {
		return fmt.Errorf("config validation: %v", err)
	}
	return nil
}

// BoardFromConfig builds the initial BoardState described by the config.
func BoardFromConfig(config *PuzzleConfig) (*BoardState, error) {
	mushrooms := make([]Piece, 0, len(config.Mushrooms))
	for _, m := range config.Mushrooms {
		mushrooms = append(mushrooms, NewMushroom(m.ID, m.X, m.Y))
	}
	bunnies := make([]Piece, 0, len(config.Bunnies))
	for _, b := range config.Bunnies {
		bunnies = append(bunnies, NewBunny(b.ID, b.X, b.Y))
	}
	foxes := make([]Piece, 0, len(config.Foxes))
	for _, f := range config.Foxes {
		foxes = append(foxes, NewFox(f.ID, f.X, f.Y, f.Orientation))
	}
	return NewBoardState(config.BoardSize, mushrooms, bunnies, foxes, config.GoalCells)
}

// LoadPuzzleConfig loads and validates a puzzle definition from a JSON file.
func LoadPuzzleConfig(filename string) (*PuzzleConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidatePuzzleConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a puzzle definition by name from the given configs
// directory, appending the .json extension if missing.
func LoadConfigByName(configDir, configName string) (*PuzzleConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join(configDir, configName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file %q not found", configName)
	}

	config, err := LoadPuzzleConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %v", configName, err)
	}
	return config, nil
}

// DefaultPuzzleConfig returns the classic hand-authored 5x5 puzzle: three
// mushrooms, three bunnies, two foxes, goal cells on the corners and center.
func DefaultPuzzleConfig() *PuzzleConfig {
	config := &PuzzleConfig{
		Name:        "Classic",
		Description: "Classic 5x5 puzzle with three bunnies and two foxes",
		BoardSize:   5,
		Mushrooms: []PiecePlacement{
			{ID: "m0", X: 3, Y: 0},
			{ID: "m1", X: 2, Y: 2},
			{ID: "m2", X: 4, Y: 4},
		},
		Bunnies: []PiecePlacement{
			{ID: "b0", X: 3, Y: 1},
			{ID: "b1", X: 4, Y: 2},
			{ID: "b2", X: 0, Y: 3},
		},
		Foxes: []FoxPlacement{
			{ID: "f0", X: 0, Y: 1, Orientation: Right},
			{ID: "f1", X: 2, Y: 3, Orientation: Right},
		},
		GoalCells: []Position{
			{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 2, Y: 2}, {X: 4, Y: 0}, {X: 4, Y: 4},
		},
	}
	config.Messages.Welcome = "Jump bunnies to the burrows! Foxes slide, mushrooms stay put."
	config.Messages.Solved = "Solved! Every bunny is in a burrow."
	config.Messages.IllegalMove = "That move is not legal."
	config.Messages.NoSolution = "This puzzle has no solution."
	return config
}

// InitGameStateFromConfig creates a fresh game state for the config. A nil
// config falls back to the default puzzle.
func InitGameStateFromConfig(config *PuzzleConfig) *GameState {
	if config == nil {
		config = DefaultPuzzleConfig()
	}

	board, err := BoardFromConfig(config)
	if err != nil {
		// The config was validated at load time; a failure here means the
		// caller bypassed validation.
		panic(fmt.Sprintf("engine: config %q failed board construction: %v", config.Name, err))
	}

	return &GameState{
		Board:        board,
		Message:      config.Messages.Welcome,
		Solved:       board.IsGoal(),
		ConfigName:   config.Name,
		MoveHistory:  []MoveHistoryEntry{},
		CurrentMoves: []MoveHistoryEntry{},
	}
}
