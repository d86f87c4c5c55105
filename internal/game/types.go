// internal/game/types.go
//
// Core type definitions for the checkers engine.
// Defines:
//   - Side: the two players (teal moves toward row 7, purple toward row 0).
//   - Piece: the closed set of square values (empty, man or king per side).
//   - Coord, Move: board coordinates and a validated move with its capture flag.

package game

// Side identifies one of the two players.
type Side uint8

const (
	SideTeal Side = iota
	SidePurple
)

// String returns the lowercase side name used in logs and API payloads.
func (s Side) String() string {
	if s == SidePurple {
		return "purple"
	}
	return "teal"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideTeal {
		return SidePurple
	}
	return SideTeal
}

// Forward returns the row direction this side's men advance in:
// +1 for teal (toward row 7), -1 for purple (toward row 0).
func (s Side) Forward() int {
	if s == SidePurple {
		return -1
	}
	return 1
}

// MarshalText lets Side render as its name in JSON payloads.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Piece is the value held by one board square. A square holds at most one
// piece; Empty is the zero value so a fresh Board starts all-empty.
type Piece uint8

const (
	Empty Piece = iota
	TealMan
	PurpleMan
	TealKing
	PurpleKing
)

// Side reports which player owns the piece. ok is false for Empty.
func (p Piece) Side() (side Side, ok bool) {
	switch p {
	case TealMan, TealKing:
		return SideTeal, true
	case PurpleMan, PurpleKing:
		return SidePurple, true
	}
	return 0, false
}

// IsKing reports whether the piece is a promoted king.
func (p Piece) IsKing() bool { return p == TealKing || p == PurpleKing }

// String returns a debug-friendly name ("teal-man", "purple-king", "empty").
func (p Piece) String() string {
	switch p {
	case TealMan:
		return "teal-man"
	case PurpleMan:
		return "purple-man"
	case TealKing:
		return "teal-king"
	case PurpleKing:
		return "purple-king"
	}
	return "empty"
}

// token is the compact wire form used on serialized boards:
// men are lowercase, kings uppercase, empty squares the empty string.
func (p Piece) token() string {
	switch p {
	case TealMan:
		return "t"
	case PurpleMan:
		return "p"
	case TealKing:
		return "T"
	case PurpleKing:
		return "P"
	}
	return ""
}

// MarshalText lets a Board render as an 8x8 array of piece tokens in JSON.
func (p Piece) MarshalText() ([]byte, error) { return []byte(p.token()), nil }

// Coord addresses a single board square. Row 0 is teal's back rank.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is one validated half-turn: a simple diagonal step or a single
// capturing jump. Capture records whether applying it removed a piece.
type Move struct {
	From    Coord `json:"from"`
	To      Coord `json:"to"`
	Capture bool  `json:"capture"`
}
