package engine

import "fmt"

// targetHead evaluates the kind-specific movement rule against a single
// consistent snapshot and returns the piece's new head position. There is no
// partial application: failures leave no trace on the state.
func targetHead(b *BoardState, piece Piece, direction Direction) (Position, error) {
	switch piece.Kind {
	case Mushroom:
		return Position{}, fmt.Errorf("%w: %q is a mushroom and cannot move", ErrIllegalMove, piece.ID)
	case Bunny:
		return bunnyTarget(b, piece, direction)
	case Fox:
		return foxTarget(b, piece, direction)
	default:
		return Position{}, fmt.Errorf("%w: piece %q has unknown kind %q", ErrIllegalMove, piece.ID, piece.Kind)
	}
}

// bunnyTarget implements the jump rule: the immediate neighbor in the move
// direction must be on the board and occupied, and the bunny lands on the
// first empty on-board cell past the occupied run. Reaching the edge before
// a vacancy makes the move illegal.
func bunnyTarget(b *BoardState, piece Piece, direction Direction) (Position, error) {
	neighbor := piece.Head.Shift(direction, 1)
	if !b.IsOnBoard(neighbor) || !b.IsOccupied(neighbor, piece.ID) {
		return Position{}, fmt.Errorf("%w: %q has nothing to jump over going %s", ErrIllegalMove, piece.ID, direction)
	}

	for hops := 1; ; hops++ {
		target := piece.Head.Shift(direction, hops)
		if !b.IsOnBoard(target) {
			return Position{}, fmt.Errorf("%w: %q would jump off the board going %s", ErrIllegalMove, piece.ID, direction)
		}
		if !b.IsOccupied(target, piece.ID) {
			return target, nil
		}
	}
}

// foxTarget implements the slide rule: the move direction must lie on the
// fox's own axis, and every cell the fox would newly occupy must be on the
// board and free of other pieces. The fox moves exactly one cell.
func foxTarget(b *BoardState, piece Piece, direction Direction) (Position, error) {
	if !piece.Orientation.OnSameAxis(direction) {
		return Position{}, fmt.Errorf("%w: %q can only slide along its %s axis", ErrIllegalMove, piece.ID, piece.Orientation)
	}

	for _, cell := range piece.Cells() {
		shifted := cell.Shift(direction, 1)
		if !b.IsOnBoard(shifted) {
			return Position{}, fmt.Errorf("%w: %q would slide off the board going %s", ErrIllegalMove, piece.ID, direction)
		}
		if b.IsOccupied(shifted, piece.ID) {
			return Position{}, fmt.Errorf("%w: %q is blocked going %s", ErrIllegalMove, piece.ID, direction)
		}
	}

	return piece.Head.Shift(direction, 1), nil
}
