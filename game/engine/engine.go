package engine

import (
	"fmt"
	"time"
)

// GameState is the mutable wrapper around the immutable board snapshot. The
// Board pointer is swapped on every successful move; a BoardState value is
// never modified in place.
type GameState struct {
	Board       *BoardState `json:"board"`
	Message     string      `json:"message"`
	Solved      bool        `json:"solved"`
	TotalReward int         `json:"total_reward"`
	ConfigName  string      `json:"config_name"`

	// MoveHistory is cumulative and survives resets; CurrentMoves mirrors it
	// but is cleared on reset.
	MoveHistory       []MoveHistoryEntry `json:"move_history"`
	TotalMoves        int                `json:"total_moves"`
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`
}

// MoveHistoryEntry represents a single attempted move in the game history.
type MoveHistoryEntry struct {
	PieceID    string    `json:"piece_id"`
	Direction  Direction `json:"direction"`
	From       Position  `json:"from_position"`
	To         Position  `json:"to_position"`
	Reward     int       `json:"reward"`
	Success    bool      `json:"success"`
	Timestamp  int64     `json:"timestamp"`
	MoveNumber int       `json:"move_number"`
}

// StepResult is the outcome of a single environment step.
type StepResult struct {
	State  *BoardState `json:"state"`
	Reward int         `json:"reward"`
	Done   bool        `json:"done"`
	Legal  bool        `json:"legal"`
}

// Engine provides the main interface for puzzle operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsSolved() bool

	// Movement operations
	Step(pieceID string, direction Direction) StepResult
	CanMove(pieceID string, direction Direction) bool
	GetPossibleMoves() []Move

	// Solving
	Solve(mode SearchMode) (*Solution, error)
	Hint() (Move, error)

	// Configuration
	GetConfig() *PuzzleConfig

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state    *GameState
	config   *PuzzleConfig
	solution *Solution // cached by Solve, invalidated by SetState
}

// NewEngine creates a new game engine with the provided puzzle configuration.
func NewEngine(config *PuzzleConfig) (*GameEngine, error) {
	if err := ValidatePuzzleConfig(config); err != nil {
		return nil, err
	}

	return &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config),
	}, nil
}

// NewEngineWithDefaults creates a new game engine with the classic puzzle.
func NewEngineWithDefaults() *GameEngine {
	config := DefaultPuzzleConfig()
	return &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config),
	}
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil || state.Board == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	e.solution = nil
	return nil
}

// Reset resets the puzzle to its initial arrangement. Cumulative history and
// totals are preserved; only the current segment is cleared.
func (e *GameEngine) Reset() *GameState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = InitGameStateFromConfig(e.config)
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal
	e.state.CurrentMoves = []MoveHistoryEntry{}
	e.state.CurrentMovesCount = 0

	return e.state
}

// IsSolved reports whether every bunny is on a goal cell.
func (e *GameEngine) IsSolved() bool {
	return e.state.Solved
}

// Step attempts one move and applies the reward scheme: RewardSolved when the
// move completes the puzzle, RewardLegal for any other legal move, and
// RewardIllegal when the move is rejected (the board is left unchanged).
func (e *GameEngine) Step(pieceID string, direction Direction) StepResult {
	from := Position{}
	if piece, ok := e.state.Board.PieceByID(pieceID); ok {
		from = piece.Head
	}

	next, err := e.state.Board.AttemptMove(pieceID, direction)
	result := StepResult{State: e.state.Board}
	if err != nil {
		result.Reward = RewardIllegal
		e.state.Message = e.config.Messages.IllegalMove
		e.recordMove(pieceID, direction, from, from, RewardIllegal, false)
		e.state.TotalReward += RewardIllegal
		return result
	}

	e.state.Board = next
	result.State = next
	result.Legal = true

	to, _ := next.PieceByID(pieceID)
	if next.IsGoal() {
		e.state.Solved = true
		result.Done = true
		result.Reward = RewardSolved
		e.state.Message = e.config.Messages.Solved
	} else {
		result.Reward = RewardLegal
		e.state.Message = fmt.Sprintf("%s moved %s to (%d,%d)", pieceID, direction, to.Head.X, to.Head.Y)
	}

	e.recordMove(pieceID, direction, from, to.Head, result.Reward, true)
	e.state.TotalReward += result.Reward
	return result
}

// CanMove checks whether the piece can legally move in the direction.
func (e *GameEngine) CanMove(pieceID string, direction Direction) bool {
	_, err := e.state.Board.AttemptMove(pieceID, direction)
	return err == nil
}

// GetPossibleMoves returns every legal move from the current board, in the
// solver's enumeration order.
func (e *GameEngine) GetPossibleMoves() []Move {
	var possible []Move
	for _, piece := range e.state.Board.MovablePieces() {
		for _, direction := range Directions {
			if e.CanMove(piece.ID, direction) {
				possible = append(possible, Move{PieceID: piece.ID, Direction: direction})
			}
		}
	}
	return possible
}

// Solve runs the solver from the current board and caches the result so that
// subsequent Hint calls along the solution path are map lookups.
func (e *GameEngine) Solve(mode SearchMode) (*Solution, error) {
	solver := NewSolver(mode)
	solution, err := solver.Solve(e.state.Board)
	if err != nil {
		return nil, err
	}
	e.solution = solution
	return solution, nil
}

// Hint returns the move that advances the current board toward the goal,
// according to the most recent Solve. Without a cached solution it runs a
// breadth-first search first. Boards off the solution path fail with
// ErrNoPolicyForState.
func (e *GameEngine) Hint() (Move, error) {
	if e.solution == nil {
		if _, err := e.Solve(BreadthFirst); err != nil {
			return Move{}, err
		}
	}
	return e.solution.Policy.Next(e.state.Board)
}

// GetConfig returns the current puzzle configuration
func (e *GameEngine) GetConfig() *PuzzleConfig {
	return e.config
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

func (e *GameEngine) recordMove(pieceID string, direction Direction, from, to Position, reward int, success bool) {
	entry := MoveHistoryEntry{
		PieceID:    pieceID,
		Direction:  direction,
		From:       from,
		To:         to,
		Reward:     reward,
		Success:    success,
		Timestamp:  time.Now().Unix(),
		MoveNumber: e.state.TotalMoves + 1,
	}
	e.state.MoveHistory = append(e.state.MoveHistory, entry)
	e.state.TotalMoves++
	e.state.CurrentMoves = append(e.state.CurrentMoves, entry)
	e.state.CurrentMovesCount++
}
