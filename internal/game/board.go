// internal/game/board.go
//
// Board geometry and construction.
// The board is a fixed 8x8 value array; pieces live only on dark squares,
// where dark(r,c) means (r+c) is odd. Light squares stay empty for the
// whole game, so most loops only ever visit half the grid.

package game

// BoardSize is the edge length of the square board.
const BoardSize = 8

// rowsPerSide is how many ranks each side's men fill at the start.
const rowsPerSide = BoardSize/2 - 1

// Board is the full grid of square values. It is a plain value type:
// assigning a Board (or a State containing one) produces an independent
// copy, which is what the enumerator's trial applications rely on.
type Board [BoardSize][BoardSize]Piece

// InBounds reports whether (row, col) addresses a real square.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// IsDark reports whether (row, col) is a playable dark square.
func IsDark(row, col int) bool { return (row+col)%2 == 1 }

// NewBoard returns a board in the starting position: teal men on the dark
// squares of the rowsPerSide ranks nearest row 0, purple men on the dark
// squares of the ranks nearest row 7, 12 pieces per side and no kings.
func NewBoard() Board {
	var b Board
	for r := 0; r < rowsPerSide; r++ {
		for c := 0; c < BoardSize; c++ {
			if IsDark(r, c) {
				b[r][c] = TealMan
			}
		}
	}
	for r := BoardSize - rowsPerSide; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if IsDark(r, c) {
				b[r][c] = PurpleMan
			}
		}
	}
	return b
}

// Count scans the whole board and reports how many pieces each side has.
// Kings and men count the same.
func (b *Board) Count() (teal, purple int) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch side, ok := b[r][c].Side(); {
			case !ok:
			case side == SideTeal:
				teal++
			default:
				purple++
			}
		}
	}
	return teal, purple
}
