// internal/ai/selector.go
//
// Move selection for the computer-controlled side (purple).
// Responsibilities:
//   - Enumerate purple's legal moves through the rules engine.
//   - Score each move with a one-ply static evaluation (piece difference
//     after the move, plus a bonus for captures).
//   - Pick a best-scoring move with probability OptimalChance, otherwise
//     any legal move, both uniformly.
//
// Notes:
//   - The evaluation is deliberately greedy: no look-ahead, no search
//     tree. Difficulty comes from how often the best move is played,
//     not from deeper analysis.
//   - All randomness flows through the Selector's own seeded generator,
//     so a fixed seed replays identical games.

package ai

import (
	"math"
	"math/rand"

	"github.com/robalobadob/checkers-server/internal/game"
)

// captureBonus is added to a move's score when it takes a piece, so an
// even trade still reads as progress for the side on the move.
const captureBonus = 2

// Selector chooses moves for purple at a fixed difficulty.
type Selector struct {
	rng    *rand.Rand
	chance float64
}

// NewSelector returns a selector for the given difficulty whose random
// choices are fully determined by seed.
func NewSelector(d Difficulty, seed int64) *Selector {
	return &Selector{
		rng:    rand.New(rand.NewSource(seed)),
		chance: d.OptimalChance(),
	}
}

// ChooseMove picks purple's next move for the given position. found is
// false when purple has no legal move, which the caller should treat as
// "purple cannot move", not as a failure.
func (sel *Selector) ChooseMove(s *game.State) (move game.Move, found bool) {
	all := s.LegalMoves(game.SidePurple)
	if len(all) == 0 {
		return game.Move{}, false
	}

	var best []game.Move
	bestScore := math.MinInt
	for _, m := range all {
		score := scoreMove(s, m)
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, m)
		}
	}

	if sel.rng.Float64() < sel.chance && len(best) > 0 {
		return best[sel.rng.Intn(len(best))], true
	}
	return all[sel.rng.Intn(len(all))], true
}

// scoreMove applies m to a disposable copy of the position and evaluates
// the result from purple's point of view: purple pieces minus teal pieces
// (kings weigh the same as men), plus the capture bonus when m jumps.
func scoreMove(s *game.State, m game.Move) int {
	trial := *s
	trial.Turn = game.SidePurple
	trial.Apply(m.From, m.To)

	teal, purple := trial.Board.Count()
	score := purple - teal
	if m.Capture {
		score += captureBonus
	}
	return score
}
