package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Paul0Junior/checklist-eng/internal/store"
)

// NewTestStore creates a SQLiteStore backed by a temp file with all
// migrations applied and the reference catalog seeded. It
// automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "checklist.db"))
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	if err := s.SeedReferenceData(context.Background()); err != nil {
		t.Fatalf("seeding reference data: %v", err)
	}

	return s
}
