package engine

import "errors"

// Setup errors are fatal and surfaced at construction time. Move errors are
// expected, recoverable outcomes: the solver consumes them as "this neighbor
// does not exist" and never logs them.
var (
	ErrInvalidSetup = errors.New("invalid setup")
	ErrIllegalMove  = errors.New("illegal move")
	ErrUnknownPiece = errors.New("unknown piece")

	// Search outcomes. ErrNoSolution means the reachable state space was
	// exhausted; ErrSearchAborted means a node budget was exceeded first.
	ErrNoSolution    = errors.New("no solution")
	ErrSearchAborted = errors.New("search aborted: node budget exceeded")

	// ErrNoPolicyForState is returned when a policy is queried with a state
	// that is not on the discovered solution path.
	ErrNoPolicyForState = errors.New("no policy for state")
)
