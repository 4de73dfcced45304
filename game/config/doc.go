// Package config provides configuration management for the Jump'In puzzle.
//
// The config package handles:
//   - Loading puzzle configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Puzzle configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board side length
//   - Mushroom, bunny, and fox placements (foxes with an orientation)
//   - The goal-cell set bunnies must reach
//   - Game messages for various events
//
// Available Configurations:
//
// The package ships with several puzzle definitions:
//   - classic: the 5x5 puzzle with goals on the corners and center
//   - trivial: a one-jump warmup puzzle
//   - boxed: a deliberately unsolvable layout used to exercise solver failure
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	puzzleConfig, err := manager.LoadConfig("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Board size bounds
//   - Unique piece identifiers
//   - On-board, non-overlapping piece placements
//   - At least one bunny and one goal cell
//   - Required name and description fields
//
// When no config files are available the manager falls back to the built-in
// classic puzzle.
package config
