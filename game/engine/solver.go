package engine

import (
	"errors"
	"fmt"
)

// SearchMode selects the traversal order of the solver's frontier.
type SearchMode string

const (
	// BreadthFirst guarantees the first solution found has the fewest moves
	// under the fixed move-enumeration order.
	BreadthFirst SearchMode = "bfs"
	// DepthFirst is typically faster but the solution is not length-minimal.
	DepthFirst SearchMode = "dfs"
)

// ParseSearchMode converts a mode name into a SearchMode.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(s) {
	case BreadthFirst, DepthFirst:
		return SearchMode(s), nil
	default:
		return "", fmt.Errorf("invalid search mode %q (want %q or %q)", s, BreadthFirst, DepthFirst)
	}
}

// Policy maps a board state (by its canonical key) to the move that advances
// it along the discovered solution path.
type Policy map[string]Move

// Next returns the move the policy prescribes for the state. States not on
// the solution path fail with ErrNoPolicyForState.
func (p Policy) Next(state *BoardState) (Move, error) {
	move, ok := p[state.Key()]
	if !ok {
		return Move{}, ErrNoPolicyForState
	}
	return move, nil
}

// Solution is the result of a successful search: the solved terminal state,
// the move sequence from the initial state, and the replay policy.
type Solution struct {
	Mode          SearchMode  `json:"mode"`
	Final         *BoardState `json:"final_state"`
	Moves         []Move      `json:"moves"`
	Policy        Policy      `json:"-"`
	StatesVisited int         `json:"states_visited"`
}

// Solver performs exhaustive graph traversal over board states. The visited
// map lives entirely inside a single Solve call, so independent searches
// cannot interfere with each other.
type Solver struct {
	Mode SearchMode
	// NodeBudget caps the number of expanded states; zero means unlimited.
	// Exceeding it surfaces as ErrSearchAborted rather than ErrNoSolution.
	NodeBudget int
}

// NewSolver creates a solver with the given traversal mode and no node budget.
func NewSolver(mode SearchMode) *Solver {
	return &Solver{Mode: mode}
}

type frontierNode struct {
	state *BoardState
	// move is the move that produced state; nil for the initial state.
	move *Move
}

// Solve searches from start until a goal state is found or the reachable
// space is exhausted. The move-generation order is fixed (movable pieces in
// declaration order, directions in enumeration order) so both modes are fully
// reproducible for a given input.
func (s *Solver) Solve(start *BoardState) (*Solution, error) {
	if start == nil {
		return nil, fmt.Errorf("%w: nil start state", ErrInvalidSetup)
	}

	// visited records, for every expanded state, the move that first reached
	// it. The initial state's entry is nil, which terminates the backward
	// policy walk.
	visited := make(map[string]*Move)
	frontier := []frontierNode{{state: start}}
	expanded := 0

	for len(frontier) > 0 {
		var current frontierNode
		if s.Mode == BreadthFirst {
			current = frontier[0]
			frontier = frontier[1:]
		} else {
			current = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		}

		key := current.state.Key()
		if _, seen := visited[key]; seen {
			continue // duplicate reached via a different path
		}
		visited[key] = current.move

		if current.state.IsGoal() {
			return s.buildSolution(current.state, visited)
		}

		expanded++
		if s.NodeBudget > 0 && expanded > s.NodeBudget {
			return nil, ErrSearchAborted
		}

		for _, piece := range current.state.MovablePieces() {
			for _, direction := range Directions {
				next, err := current.state.AttemptMove(piece.ID, direction)
				if err != nil {
					continue // this neighbor does not exist
				}
				move := Move{PieceID: piece.ID, Direction: direction}
				frontier = append(frontier, frontierNode{state: next, move: &move})
			}
		}
	}

	return nil, ErrNoSolution
}

// buildSolution walks the search history backward from the solved state,
// inverting each recorded move to recover the predecessor state, until it
// reaches the initial state (the one with no originating move). Each
// predecessor is mapped to the move that advances it toward the goal.
//
// Single-step inversion is exact for foxes and holds for bunny jumps because
// the occupied run a jump crossed is unchanged by the jump itself, so jumping
// back in the opposite direction lands on the vacated origin cell.
func (s *Solver) buildSolution(final *BoardState, visited map[string]*Move) (*Solution, error) {
	policy := make(Policy)
	var reversed []Move

	state := final
	move := visited[state.Key()]
	for move != nil {
		prev, err := state.AttemptMove(move.PieceID, move.Direction.Opposite())
		if err != nil {
			return nil, fmt.Errorf("cannot invert %s while reconstructing path: %w", move, err)
		}
		policy[prev.Key()] = *move
		reversed = append(reversed, *move)

		state = prev
		recorded, ok := visited[state.Key()]
		if !ok {
			return nil, errors.New("reconstructed predecessor state missing from search history")
		}
		move = recorded
	}

	moves := make([]Move, len(reversed))
	for i, m := range reversed {
		moves[len(reversed)-1-i] = m
	}

	return &Solution{
		Mode:          s.Mode,
		Final:         final,
		Moves:         moves,
		Policy:        policy,
		StatesVisited: len(visited),
	}, nil
}
