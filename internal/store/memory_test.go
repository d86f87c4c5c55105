// internal/store/memory_test.go

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/checkers-server/internal/ai"
	"github.com/robalobadob/checkers-server/internal/match"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	m := match.New(ai.Medium, 1)

	if err := st.Save(ctx, m); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := st.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != m {
		t.Fatalf("Get returned a different match: %p vs %p", got, m)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Get(context.Background(), "deadbeefdeadbeef")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get error = %v, want %v", err, ErrNotFound)
	}
}
