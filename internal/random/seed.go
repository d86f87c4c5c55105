// Package random provides seed generation for the computer player's
// pseudo-random move selection. Seeds come from crypto/rand so separate
// matches never share a sequence, while a recorded seed still replays a
// match deterministically.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
