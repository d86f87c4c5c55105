// internal/match/match.go
//
// One human-vs-computer checkers match and its turn orchestration.
// Responsibilities:
//   - Own a single game state plus the bookkeeping the engine deliberately
//     excludes: match ID, difficulty, result, move counter.
//   - Run one full exchange per player move: apply the human (teal) move,
//     detect a purple loss, let the selector reply for purple, detect a
//     teal loss, hand the turn back.
//
// Notes:
//   - A side loses when it has no pieces or no legal move; those are the
//     only terminal conditions.
//   - The engine never switches turns itself; that happens here.
//   - The selector is seeded at match creation, so a match replays
//     identically from its ID-independent seed.

package match

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/robalobadob/checkers-server/internal/ai"
	"github.com/robalobadob/checkers-server/internal/game"
)

// Status is the match result so far.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusTealWon
	StatusPurpleWon
)

// String returns the wire name for the status.
func (st Status) String() string {
	switch st {
	case StatusTealWon:
		return "teal_won"
	case StatusPurpleWon:
		return "purple_won"
	}
	return "ongoing"
}

// Finished reports whether the match has a result.
func (st Status) Finished() bool { return st != StatusOngoing }

// MarshalText lets Status render as its name in JSON payloads.
func (st Status) MarshalText() ([]byte, error) { return []byte(st.String()), nil }

var (
	// ErrFinished rejects moves on a match that already has a result.
	ErrFinished = errors.New("match already finished")

	// ErrIllegalMove rejects a move the rules engine did not accept.
	ErrIllegalMove = errors.New("illegal move")
)

// Match holds the state of a single human-vs-computer session. The human
// always plays teal and moves first; the computer plays purple.
type Match struct {
	ID         string        // unique match identifier (random hex string)
	State      game.State    // board plus side to move
	Difficulty ai.Difficulty // computer strength preset
	Seed       int64         // seed the selector was created with
	Status     Status        // ongoing or the final result
	Moves      int           // half-turns applied so far, both sides

	selector *ai.Selector
}

// New constructs a match in the starting position. The seed fixes every
// random choice the computer will make for the whole match.
func New(d ai.Difficulty, seed int64) *Match {
	return &Match{
		ID:         randomID(),
		State:      game.NewState(),
		Difficulty: d,
		Seed:       seed,
		selector:   ai.NewSelector(d, seed),
	}
}

// Result reports what one call to PlayTurn did.
type Result struct {
	Capture bool       // the human move took a piece
	Reply   *game.Move // the computer's answer, nil if the match ended first
	Status  Status     // match status after the exchange
}

// PlayTurn applies the human move from -> to and, if the match is still
// running, the computer's reply. Returns ErrFinished when the match has a
// result and ErrIllegalMove (with no state change) when the rules engine
// rejects the move.
func (m *Match) PlayTurn(from, to game.Coord) (Result, error) {
	if m.Status.Finished() {
		return Result{}, ErrFinished
	}

	ok, capture := m.State.Apply(from, to)
	if !ok {
		return Result{}, ErrIllegalMove
	}
	m.Moves++
	res := Result{Capture: capture}

	if m.sideBeaten(game.SidePurple) {
		m.Status = StatusTealWon
		res.Status = m.Status
		return res, nil
	}

	m.State.Turn = game.SidePurple
	if reply, found := m.selector.ChooseMove(&m.State); found {
		_, replyCapture := m.State.Apply(reply.From, reply.To)
		reply.Capture = replyCapture
		res.Reply = &reply
		m.Moves++
	}

	if m.sideBeaten(game.SideTeal) {
		m.Status = StatusPurpleWon
		res.Status = m.Status
		return res, nil
	}

	m.State.Turn = game.SideTeal
	res.Status = m.Status
	return res, nil
}

// sideBeaten reports whether side has lost the match: out of pieces or
// out of legal moves.
func (m *Match) sideBeaten(side game.Side) bool {
	teal, purple := m.State.Board.Count()
	count := teal
	if side == game.SidePurple {
		count = purple
	}
	return count == 0 || !m.State.HasAnyMoves(side)
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
