// internal/game/board_test.go

package game

import "testing"

func TestInBounds(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{7, 7, true},
		{3, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{8, 0, false},
		{0, 8, false},
		{-2, 9, false},
	}
	for _, tt := range tests {
		if got := InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, false},
		{0, 1, true},
		{1, 0, true},
		{3, 2, true},
		{4, 4, false},
		{7, 6, true},
		{7, 7, false},
	}
	for _, tt := range tests {
		if got := IsDark(tt.row, tt.col); got != tt.want {
			t.Errorf("IsDark(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestNewBoardStartingPosition(t *testing.T) {
	b := NewBoard()

	teal, purple := b.Count()
	if teal != 12 || purple != 12 {
		t.Fatalf("Count() = (%d, %d), want (12, 12)", teal, purple)
	}

	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b[r][c]
			if p == Empty {
				continue
			}
			if !IsDark(r, c) {
				t.Errorf("piece %v on light square (%d,%d)", p, r, c)
			}
			if p.IsKing() {
				t.Errorf("king %v at (%d,%d) on a fresh board", p, r, c)
			}
			side, _ := p.Side()
			switch {
			case r < rowsPerSide && side != SideTeal:
				t.Errorf("square (%d,%d) = %v, want a teal man", r, c, p)
			case r >= BoardSize-rowsPerSide && side != SidePurple:
				t.Errorf("square (%d,%d) = %v, want a purple man", r, c, p)
			case r >= rowsPerSide && r < BoardSize-rowsPerSide:
				t.Errorf("middle square (%d,%d) = %v, want empty", r, c, p)
			}
		}
	}
}

func TestPieceSide(t *testing.T) {
	tests := []struct {
		piece    Piece
		wantSide Side
		wantOK   bool
	}{
		{Empty, 0, false},
		{TealMan, SideTeal, true},
		{TealKing, SideTeal, true},
		{PurpleMan, SidePurple, true},
		{PurpleKing, SidePurple, true},
	}
	for _, tt := range tests {
		side, ok := tt.piece.Side()
		if ok != tt.wantOK || (ok && side != tt.wantSide) {
			t.Errorf("%v.Side() = (%v, %v), want (%v, %v)", tt.piece, side, ok, tt.wantSide, tt.wantOK)
		}
	}
}

func TestSideDirections(t *testing.T) {
	if got := SideTeal.Forward(); got != 1 {
		t.Errorf("SideTeal.Forward() = %d, want 1", got)
	}
	if got := SidePurple.Forward(); got != -1 {
		t.Errorf("SidePurple.Forward() = %d, want -1", got)
	}
	if SideTeal.Opposite() != SidePurple || SidePurple.Opposite() != SideTeal {
		t.Error("Opposite() does not swap the sides")
	}
}
