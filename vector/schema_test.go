package vector_test

import (
	"testing"

	"github.com/viant/vecmath/engine"
	"github.com/viant/vecmath/vector"
)

// TestEnsureSchema verifies that EnsureSchema creates the vectors table
// without error on a fresh in-memory database and is idempotent.
func TestEnsureSchema(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := vector.EnsureSchema(db); err != nil {
			t.Fatalf("EnsureSchema failed: %v", err)
		}
	}

	// Sanity check: we can insert a row into vectors.
	if _, err := db.Exec(`INSERT INTO vectors(id, kind, dim, meta, data) VALUES('1', 4, 0, '{}', X'04')`); err != nil {
		t.Fatalf("insert into vectors failed: %v", err)
	}
}
