// Package engine implements the core puzzle logic: the immutable board
// model, kind-specific movement rules, the exhaustive solver, and the
// stateful game wrapper used by sessions and transports.
//
// The board holds three piece kinds on a square grid. Mushrooms never move.
// Bunnies occupy one cell and move by jumping over an unbroken run of
// occupied cells, landing on the first empty cell past it. Foxes occupy two
// cells and slide one cell at a time along their own axis. The puzzle is
// solved when every bunny sits on a goal cell.
//
// BoardState values are immutable; AttemptMove returns a fresh state and
// never touches the receiver. GameEngine layers mutable session concerns on
// top: move history, rewards, reset, and cached solutions for hints.
//
// The Solver explores the reachable state graph in breadth-first or
// depth-first order. Breadth-first solutions are move-count minimal. A
// Solution carries both the move sequence and a replay Policy that maps any
// on-path state to its next move.
package engine
