// internal/game/rules.go
//
// The rules engine: the single authority on move legality.
// Responsibilities:
//   - Validate a proposed half-turn (simple step or single capturing jump).
//   - Mutate the board exactly once per accepted move, including the
//     capture removal and any promotion.
//   - Guarantee zero mutation on rejection, so callers can trial-apply
//     candidates against disposable copies.
//
// Notes:
//   - Rejection is a normal outcome reported by a boolean, not an error.
//   - A jump ends the turn like a step does: there is no chained
//     multi-jump and capturing is never mandatory.
//   - Turn switching belongs to the caller; Apply only enforces that the
//     moved piece belongs to the side recorded in State.Turn.

package game

// State is the complete game position: the board plus the side to move.
// It is a value type; copying a State yields a fully independent position.
type State struct {
	Board Board
	Turn  Side
}

// NewState returns the starting position with teal to move.
func NewState() State {
	return State{Board: NewBoard(), Turn: SideTeal}
}

// Apply validates the move from -> to for the side to move and, if legal,
// performs it. Returns accepted=false (and leaves the state untouched) when
// any precondition fails, and capture=true when the move was a jump.
//
// Preconditions, checked in order:
//  1. Both coordinates on the board.
//  2. Destination a dark square and empty.
//  3. Source holds a piece of the side to move.
//  4. Row delta matches the piece's allowed direction(s): men only move
//     toward their side's forward row, kings either way.
//  5. A distance-1 diagonal is a step; a distance-2 diagonal is a jump and
//     the midpoint must hold an opposing piece. Nothing else is legal.
//
// After an accepted move a man reaching the far row is promoted to a king
// immediately, within the same call.
func (s *State) Apply(from, to Coord) (accepted, capture bool) {
	if !InBounds(from.Row, from.Col) || !InBounds(to.Row, to.Col) {
		return false, false
	}
	if !IsDark(to.Row, to.Col) || s.Board[to.Row][to.Col] != Empty {
		return false, false
	}
	piece := s.Board[from.Row][from.Col]
	side, occupied := piece.Side()
	if !occupied || side != s.Turn {
		return false, false
	}

	dr := to.Row - from.Row
	dc := to.Col - from.Col
	forward := side.Forward()
	allowedDir := func(step int) bool {
		return step == forward || (piece.IsKing() && step == -forward)
	}

	switch {
	case abs(dr) == 1 && abs(dc) == 1 && allowedDir(dr):
		// Simple step onto the adjacent empty square.
	case abs(dr) == 2 && abs(dc) == 2 && allowedDir(dr/2):
		// A distance-2 diagonal is only ever a jump over the midpoint.
		midRow, midCol := from.Row+dr/2, from.Col+dc/2
		if !InBounds(midRow, midCol) {
			return false, false
		}
		midSide, midOccupied := s.Board[midRow][midCol].Side()
		if !midOccupied || midSide == side {
			return false, false
		}
		s.Board[midRow][midCol] = Empty
		capture = true
	default:
		return false, false
	}

	s.Board[to.Row][to.Col] = piece
	s.Board[from.Row][from.Col] = Empty

	switch {
	case piece == TealMan && to.Row == BoardSize-1:
		s.Board[to.Row][to.Col] = TealKing
	case piece == PurpleMan && to.Row == 0:
		s.Board[to.Row][to.Col] = PurpleKing
	}
	return true, capture
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
