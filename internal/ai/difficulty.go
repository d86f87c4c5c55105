// internal/ai/difficulty.go
//
// Difficulty presets for the computer player. Each preset maps to the
// probability that the selector plays a best-scoring move instead of an
// arbitrary legal one.

package ai

import "strings"

// Difficulty selects how often the computer plays optimally.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DefaultDifficulty is used when a new match does not name one.
const DefaultDifficulty = Medium

// OptimalChance returns the probability, in [0,1], that the selector picks
// from the best-scoring moves rather than from all legal moves.
func (d Difficulty) OptimalChance() float64 {
	switch d {
	case Easy:
		return 0.3
	case Hard:
		return 1.0
	}
	return 0.6
}

// String returns the lowercase preset name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	}
	return "medium"
}

// MarshalText lets Difficulty render as its name in JSON payloads.
func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// ParseDifficulty maps a preset name to its Difficulty, case-insensitively.
// ok is false for names that are not presets.
func ParseDifficulty(s string) (d Difficulty, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return 0, false
}
