package engine

import (
	"encoding/json"
	"fmt"
)

// PieceKind identifies the movement behavior of a piece
type PieceKind string

const (
	Mushroom PieceKind = "mushroom" // immovable
	Bunny    PieceKind = "bunny"    // single cell, moves by jumping over occupied cells
	Fox      PieceKind = "fox"      // two cells, slides one cell along its own axis

	// Validation constants
	MinBoardSize = 1
	MaxBoardSize = 16

	// Rewards returned by GameEngine.Step
	RewardSolved  = 100
	RewardLegal   = -1
	RewardIllegal = -10
)

// Direction is one of the four compass directions. The numeric ordering is
// load-bearing: opposite directions differ by two in the 4-cycle, and
// directions on the same axis share parity.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions is the fixed enumeration order used for move generation.
var Directions = [4]Direction{Right, Down, Left, Up}

// Opposite returns the direction that undoes a move in d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// OnSameAxis reports whether d and other move along the same coordinate axis.
func (d Direction) OnSameAxis(other Direction) bool {
	return d%2 == other%2
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name ("up", "down", "left", "right")
// into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "up":
		return Up, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", s)
	}
}

// MarshalJSON encodes the direction as its lowercase name.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a direction from its lowercase name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Position represents x,y coordinates on the board, 0-indexed
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift returns the position offset by distance cells in the given direction.
func (p Position) Shift(d Direction, distance int) Position {
	switch d {
	case Right:
		return Position{X: p.X + distance, Y: p.Y}
	case Down:
		return Position{X: p.X, Y: p.Y + distance}
	case Left:
		return Position{X: p.X - distance, Y: p.Y}
	case Up:
		return Position{X: p.X, Y: p.Y - distance}
	default:
		return p
	}
}

// Piece is a puzzle piece identified by a unique ID. It occupies its head
// position plus width-1 further cells extending along its orientation.
// All occupied cells are derived from head, orientation, and width so the
// representation cannot desynchronize.
type Piece struct {
	ID          string    `json:"id"`
	Kind        PieceKind `json:"kind"`
	Head        Position  `json:"head"`
	Width       int       `json:"width"`
	Orientation Direction `json:"orientation"`
}

// NewMushroom creates an immovable single-cell piece.
func NewMushroom(id string, x, y int) Piece {
	return Piece{ID: id, Kind: Mushroom, Head: Position{X: x, Y: y}, Width: 1, Orientation: Right}
}

// NewBunny creates a single-cell piece that moves by jumping.
func NewBunny(id string, x, y int) Piece {
	return Piece{ID: id, Kind: Bunny, Head: Position{X: x, Y: y}, Width: 1, Orientation: Right}
}

// NewFox creates a two-cell piece whose tail extends from the head in the
// given orientation.
func NewFox(id string, x, y int, orientation Direction) Piece {
	return Piece{ID: id, Kind: Fox, Head: Position{X: x, Y: y}, Width: 2, Orientation: orientation}
}

// Cells returns every position the piece occupies.
func (p Piece) Cells() []Position {
	if p.Width <= 1 {
		return []Position{p.Head}
	}
	cells := make([]Position, p.Width)
	for i := 0; i < p.Width; i++ {
		cells[i] = p.Head.Shift(p.Orientation, i)
	}
	return cells
}

// Movable reports whether the piece can ever move.
func (p Piece) Movable() bool {
	return p.Kind != Mushroom
}

// Move pairs a piece with the direction it should move in.
type Move struct {
	PieceID   string    `json:"piece_id"`
	Direction Direction `json:"direction"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s", m.PieceID, m.Direction)
}
