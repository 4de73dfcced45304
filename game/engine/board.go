package engine

import (
	"fmt"
	"sort"
	"strings"
)

// BoardState is an immutable snapshot of all piece placements on a square
// board. It is created once at puzzle setup and thereafter only via
// AttemptMove, which returns a new BoardState; the receiver is never mutated.
// That stability is what allows the same state value to sit in the search
// frontier and the visited map at the same time.
type BoardState struct {
	Size      int        `json:"size"`
	Mushrooms []Piece    `json:"mushrooms"`
	Bunnies   []Piece    `json:"bunnies"`
	Foxes     []Piece    `json:"foxes"`
	Goals     []Position `json:"goal_cells"`
}

// NewBoardState validates the setup invariants and returns the initial state.
// Violations (bad size, kind mismatch, duplicate id, off-board or overlapping
// cells) fail with ErrInvalidSetup.
func NewBoardState(size int, mushrooms, bunnies, foxes []Piece, goals []Position) (*BoardState, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: board size must be between %d and %d, got %d", ErrInvalidSetup, MinBoardSize, MaxBoardSize, size)
	}

	b := &BoardState{
		Size:      size,
		Mushrooms: append([]Piece(nil), mushrooms...),
		Bunnies:   append([]Piece(nil), bunnies...),
		Foxes:     append([]Piece(nil), foxes...),
		Goals:     append([]Position(nil), goals...),
	}

	expected := map[PieceKind][]Piece{Mushroom: b.Mushrooms, Bunny: b.Bunnies, Fox: b.Foxes}
	seenIDs := make(map[string]bool)
	seenCells := make(map[Position]string)
	for kind, pieces := range expected {
		for _, p := range pieces {
			if p.Kind != kind {
				return nil, fmt.Errorf("%w: piece %q has kind %q, expected %q", ErrInvalidSetup, p.ID, p.Kind, kind)
			}
			if p.ID == "" {
				return nil, fmt.Errorf("%w: piece with empty id", ErrInvalidSetup)
			}
			if seenIDs[p.ID] {
				return nil, fmt.Errorf("%w: duplicate piece id %q", ErrInvalidSetup, p.ID)
			}
			seenIDs[p.ID] = true
			for _, cell := range p.Cells() {
				if !b.IsOnBoard(cell) {
					return nil, fmt.Errorf("%w: piece %q occupies off-board cell (%d,%d)", ErrInvalidSetup, p.ID, cell.X, cell.Y)
				}
				if other, taken := seenCells[cell]; taken {
					return nil, fmt.Errorf("%w: pieces %q and %q overlap at (%d,%d)", ErrInvalidSetup, other, p.ID, cell.X, cell.Y)
				}
				seenCells[cell] = p.ID
			}
		}
	}

	for _, g := range b.Goals {
		if !b.IsOnBoard(g) {
			return nil, fmt.Errorf("%w: goal cell (%d,%d) is off the board", ErrInvalidSetup, g.X, g.Y)
		}
	}

	return b, nil
}

// Pieces returns all pieces in declaration order: mushrooms, bunnies, foxes.
func (b *BoardState) Pieces() []Piece {
	all := make([]Piece, 0, len(b.Mushrooms)+len(b.Bunnies)+len(b.Foxes))
	all = append(all, b.Mushrooms...)
	all = append(all, b.Bunnies...)
	all = append(all, b.Foxes...)
	return all
}

// MovablePieces returns the pieces that can be move sources, in the stable
// order used for move generation: bunnies first, then foxes.
func (b *BoardState) MovablePieces() []Piece {
	movable := make([]Piece, 0, len(b.Bunnies)+len(b.Foxes))
	movable = append(movable, b.Bunnies...)
	movable = append(movable, b.Foxes...)
	return movable
}

// PieceByID looks up a piece by its identifier.
func (b *BoardState) PieceByID(id string) (Piece, bool) {
	for _, p := range b.Pieces() {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

// IsOnBoard reports whether the position lies within the board bounds.
func (b *BoardState) IsOnBoard(pos Position) bool {
	return pos.X >= 0 && pos.X < b.Size && pos.Y >= 0 && pos.Y < b.Size
}

// IsOccupied reports whether any piece other than the one identified by
// ignoreID covers the position.
func (b *BoardState) IsOccupied(pos Position, ignoreID string) bool {
	for _, p := range b.Pieces() {
		if p.ID == ignoreID {
			continue
		}
		for _, cell := range p.Cells() {
			if cell == pos {
				return true
			}
		}
	}
	return false
}

// AttemptMove applies the kind-specific movement rule for the piece and
// returns a new BoardState with that one piece's head updated. It fails with
// ErrUnknownPiece if no piece has the id, and ErrIllegalMove if the rule
// rejects the move. The receiver is left untouched in every case.
func (b *BoardState) AttemptMove(pieceID string, direction Direction) (*BoardState, error) {
	piece, ok := b.PieceByID(pieceID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, pieceID)
	}

	newHead, err := targetHead(b, piece, direction)
	if err != nil {
		return nil, err
	}

	return b.withHead(pieceID, newHead), nil
}

// withHead returns a copy of the state with one piece's head replaced.
func (b *BoardState) withHead(pieceID string, head Position) *BoardState {
	next := &BoardState{
		Size:      b.Size,
		Mushrooms: append([]Piece(nil), b.Mushrooms...),
		Bunnies:   append([]Piece(nil), b.Bunnies...),
		Foxes:     append([]Piece(nil), b.Foxes...),
		Goals:     b.Goals,
	}
	for _, pieces := range [][]Piece{next.Mushrooms, next.Bunnies, next.Foxes} {
		for i := range pieces {
			if pieces[i].ID == pieceID {
				pieces[i].Head = head
				return next
			}
		}
	}
	return next
}

// IsGoal reports whether every bunny's head lies on a goal cell.
func (b *BoardState) IsGoal() bool {
	for _, bunny := range b.Bunnies {
		onGoal := false
		for _, g := range b.Goals {
			if bunny.Head == g {
				onGoal = true
				break
			}
		}
		if !onGoal {
			return false
		}
	}
	return true
}

// EmptyCells returns every on-board cell not covered by any piece, sorted in
// row-major order.
func (b *BoardState) EmptyCells() []Position {
	occupied := make(map[Position]bool)
	for _, p := range b.Pieces() {
		for _, cell := range p.Cells() {
			occupied[cell] = true
		}
	}

	empty := make([]Position, 0, b.Size*b.Size-len(occupied))
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			pos := Position{X: x, Y: y}
			if !occupied[pos] {
				empty = append(empty, pos)
			}
		}
	}
	return empty
}

// Key returns a canonical, order-independent serialization of the state's
// (id, head) triples, used as the deduplication key during search. Pieces are
// sorted by id so internal collection ordering never affects equality.
func (b *BoardState) Key() string {
	pieces := b.Pieces()
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].ID < pieces[j].ID })

	var sb strings.Builder
	for _, p := range pieces {
		fmt.Fprintf(&sb, "%s:%d,%d;", p.ID, p.Head.X, p.Head.Y)
	}
	return sb.String()
}

// Equal reports structural equality: every piece, by id, occupies the same
// head position in both states.
func (b *BoardState) Equal(other *BoardState) bool {
	if other == nil {
		return false
	}
	return b.Key() == other.Key()
}
