// internal/game/moves.go
//
// Move enumeration by exhaustive trial application.
// Every candidate destination is tested by calling Apply on a disposable
// copy of the state, so legality is decided in exactly one place (rules.go)
// and never re-derived here. The offset set covers every step and jump a
// piece could make; Apply rejects the mismatched combinations.

package game

// moveOffsets are the per-axis deltas that can form a legal step or jump.
var moveOffsets = [...]int{-2, -1, 1, 2}

// LegalMoves collects every legal move for the given side, each with its
// capture flag, by trial-applying all candidate destinations. The order is
// deterministic: squares row-major, offsets as declared above.
func (s *State) LegalMoves(side Side) []Move {
	var moves []Move
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if owner, occupied := s.Board[r][c].Side(); !occupied || owner != side {
				continue
			}
			from := Coord{Row: r, Col: c}
			for _, dr := range moveOffsets {
				for _, dc := range moveOffsets {
					to := Coord{Row: r + dr, Col: c + dc}
					trial := *s
					trial.Turn = side
					if ok, capture := trial.Apply(from, to); ok {
						moves = append(moves, Move{From: from, To: to, Capture: capture})
					}
				}
			}
		}
	}
	return moves
}

// HasAnyMoves reports whether the given side has at least one legal move,
// returning as soon as one candidate is accepted. Which candidate trips it
// first is not specified, only whether any exists.
func (s *State) HasAnyMoves(side Side) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if owner, occupied := s.Board[r][c].Side(); !occupied || owner != side {
				continue
			}
			from := Coord{Row: r, Col: c}
			for _, dr := range moveOffsets {
				for _, dc := range moveOffsets {
					trial := *s
					trial.Turn = side
					if ok, _ := trial.Apply(from, Coord{Row: r + dr, Col: c + dc}); ok {
						return true
					}
				}
			}
		}
	}
	return false
}
