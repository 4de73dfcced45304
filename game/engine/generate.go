package engine

import (
	"fmt"
	"math/rand"
)

// RandomEmptyPositions returns up to num distinct empty cells in random
// order, drawn with the caller's rng for reproducibility.
func (b *BoardState) RandomEmptyPositions(num int, rng *rand.Rand) []Position {
	empty := b.EmptyCells()
	rng.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})
	if num > len(empty) {
		num = len(empty)
	}
	return empty[:num]
}

// ConsecutiveEmptyRuns returns up to num disjoint runs of `width` consecutive
// empty cells, scanning columns first then rows from each cell. Runs do not
// share cells. Fewer than num runs may exist; all found are returned.
func (b *BoardState) ConsecutiveEmptyRuns(num, width int) [][]Position {
	if width <= 0 || width > b.Size {
		return nil
	}

	empty := make(map[Position]bool)
	for _, pos := range b.EmptyCells() {
		empty[pos] = true
	}

	var found [][]Position
	for x := 0; x < b.Size; x++ {
		for y := 0; y < b.Size; y++ {
			for _, down := range []bool{true, false} {
				run := make([]Position, 0, width)
				for k := 0; k < width; k++ {
					pos := Position{X: x, Y: y + k}
					if !down {
						pos = Position{X: x + k, Y: y}
					}
					if !b.IsOnBoard(pos) || !empty[pos] {
						run = nil
						break
					}
					run = append(run, pos)
				}
				if run == nil {
					continue
				}
				found = append(found, run)
				for _, pos := range run {
					delete(empty, pos)
				}
				if len(found) == num {
					return found
				}
			}
		}
	}
	return found
}

// RandomBoard places the requested pieces on random empty cells and returns
// the resulting state. Fox bodies land on random consecutive empty runs, and
// goal cells on a random selection of the remaining empty cells, one per
// bunny. The generated board is not guaranteed solvable; callers that care
// should probe it with a Solver.
func RandomBoard(size, numMushrooms, numBunnies, numFoxes int, rng *rand.Rand) (*BoardState, error) {
	board, err := NewBoardState(size, nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	mushrooms := make([]Piece, 0, numMushrooms)
	for i, pos := range board.RandomEmptyPositions(numMushrooms, rng) {
		mushrooms = append(mushrooms, NewMushroom(fmt.Sprintf("m%d", i), pos.X, pos.Y))
	}
	if len(mushrooms) < numMushrooms {
		return nil, fmt.Errorf("%w: board too small for %d mushrooms", ErrInvalidSetup, numMushrooms)
	}
	if board, err = NewBoardState(size, mushrooms, nil, nil, nil); err != nil {
		return nil, err
	}

	bunnies := make([]Piece, 0, numBunnies)
	for i, pos := range board.RandomEmptyPositions(numBunnies, rng) {
		bunnies = append(bunnies, NewBunny(fmt.Sprintf("b%d", i), pos.X, pos.Y))
	}
	if len(bunnies) < numBunnies {
		return nil, fmt.Errorf("%w: board too small for %d bunnies", ErrInvalidSetup, numBunnies)
	}
	if board, err = NewBoardState(size, mushrooms, bunnies, nil, nil); err != nil {
		return nil, err
	}

	foxes := make([]Piece, 0, numFoxes)
	runs := board.ConsecutiveEmptyRuns(numFoxes, 2)
	if len(runs) < numFoxes {
		return nil, fmt.Errorf("%w: no room for %d foxes", ErrInvalidSetup, numFoxes)
	}
	for i, run := range runs {
		orientation := Down
		if run[1].Y == run[0].Y {
			orientation = Right
		}
		foxes = append(foxes, NewFox(fmt.Sprintf("f%d", i), run[0].X, run[0].Y, orientation))
	}
	if board, err = NewBoardState(size, mushrooms, bunnies, foxes, nil); err != nil {
		return nil, err
	}

	goals := board.RandomEmptyPositions(numBunnies, rng)
	if len(goals) < numBunnies {
		return nil, fmt.Errorf("%w: no empty cells left for goals", ErrInvalidSetup)
	}

	return NewBoardState(size, mushrooms, bunnies, foxes, goals)
}
