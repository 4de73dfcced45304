package engine

import (
	"fmt"
	"strings"
)

// String renders the board as a text grid, one row per line. Occupied cells
// show the piece id, goal cells show "*" when empty, and all other empty
// cells show ".". Columns are padded to the widest id so the grid stays
// aligned.
func (b *BoardState) String() string {
	cellWidth := 1
	byCell := make(map[Position]string)
	for _, p := range b.Pieces() {
		if len(p.ID) > cellWidth {
			cellWidth = len(p.ID)
		}
		for _, cell := range p.Cells() {
			byCell[cell] = p.ID
		}
	}

	goals := make(map[Position]bool, len(b.Goals))
	for _, g := range b.Goals {
		goals[g] = true
	}

	var sb strings.Builder
	for y := 0; y < b.Size; y++ {
		var row strings.Builder
		for x := 0; x < b.Size; x++ {
			pos := Position{X: x, Y: y}
			label, ok := byCell[pos]
			if !ok {
				label = "."
				if goals[pos] {
					label = "*"
				}
			}
			if x > 0 {
				row.WriteByte(' ')
			}
			fmt.Fprintf(&row, "%-*s", cellWidth, label)
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderMoves formats a move sequence as a numbered list, one move per line.
func RenderMoves(moves []Move) string {
	var sb strings.Builder
	for i, m := range moves {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, m)
	}
	return sb.String()
}
