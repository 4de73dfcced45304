package service

import (
	"time"

	"github.com/jumpin-puzzle/jumpin/game/engine"
)

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string               `json:"id"`
	ConfigName     string               `json:"config_name"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
	GameState      *engine.GameState    `json:"game_state"`
	GameConfig     *engine.PuzzleConfig `json:"game_config"`
}

// MoveRequest identifies one move in a bulk request
type MoveRequest struct {
	PieceID   string `json:"piece_id"`
	Direction string `json:"direction"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success       bool              `json:"success"`
	GameState     *engine.GameState `json:"game_state"`
	Message       string            `json:"message"`
	Reward        int               `json:"reward"`
	Solved        bool              `json:"solved"`
	Events        []GameEvent       `json:"events,omitempty"`
	PossibleMoves []engine.Move     `json:"possible_moves,omitempty"`
	BoardView     string            `json:"board_view,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"` // 1-based index of the move that caused stop
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	Solved         bool              `json:"solved"`
	RewardDelta    int               `json:"reward_delta"`
	Message        string            `json:"message,omitempty"`
	BoardView      string            `json:"board_view,omitempty"`
}

// SolveResult contains the outcome of running the solver on a session's
// current board.
type SolveResult struct {
	RunID         string            `json:"run_id"`
	Mode          engine.SearchMode `json:"mode"`
	Moves         []engine.Move     `json:"moves"`
	PathLength    int               `json:"path_length"`
	StatesVisited int               `json:"states_visited"`
	Duration      time.Duration     `json:"duration_ns"`
	FinalView     string            `json:"final_view,omitempty"`
}

// HintResult contains the next move toward the goal from the current board
type HintResult struct {
	Move      engine.Move       `json:"move"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "move", "solved", "illegal_move", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	BoardSize   int    `json:"board_size"`
	NumBunnies  int    `json:"num_bunnies"`
	NumFoxes    int    `json:"num_foxes"`
}
