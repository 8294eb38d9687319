package sudoku

import "strings"

// Cell is one square of the board.
type Cell struct {
	Value  string `json:"value"`
	Fixed  bool   `json:"fixed"`
	Valid  bool   `json:"valid"`
	Hinted bool   `json:"hinted"`
}

// Board is the 4x4 grid.
type Board [Size][Size]Cell

// String renders the board as text. Empty cells print as a dot and invalid
// cells carry a leading star.
//
//	+-----+-----+
//	| ₿ . | ♠ . |
//	| . ♣ |*♠ ♦ |
//	+-----+-----+
func (b Board) String() string {
	const line = "+-----+-----+\n"

	var sb strings.Builder
	for r := range Size {
		if r%BoxSize == 0 {
			sb.WriteString(line)
		}

		sb.WriteString("|")
		for c := range Size {
			cell := b[r][c]

			switch {
			case !cell.Valid:
				sb.WriteString("*")
			default:
				sb.WriteString(" ")
			}

			switch {
			case cell.Value == "":
				sb.WriteString(".")
			default:
				sb.WriteString(cell.Value)
			}

			if c%BoxSize == BoxSize-1 {
				sb.WriteString(" |")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(line)

	return sb.String()
}
