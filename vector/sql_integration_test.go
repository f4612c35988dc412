package vector_test

import (
	"context"
	"testing"

	"github.com/viant/vecmath/engine"
	"github.com/viant/vecmath/vector"
)

// TestSQLOrderByVecCosine validates that the vec_cosine SQL function can be
// used in an ORDER BY clause over the vectors table, using vectors stored as
// BLOBs via vector.Encode.
func TestSQLOrderByVecCosine(t *testing.T) {
	// Register functions before any connection work
	if err := engine.RegisterVectorFunctions(nil); err != nil {
		t.Fatalf("RegisterVectorFunctions: %v", err)
	}
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if err := vector.EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	// Two simple vectors: e1=[1,0], e2=[0,1]; query=[1,0].
	e1, err := vector.Encode(vector.New[float32](1, 0))
	if err != nil {
		t.Fatalf("Encode e1 failed: %v", err)
	}
	e2, err := vector.Encode(vector.New[float32](0, 1))
	if err != nil {
		t.Fatalf("Encode e2 failed: %v", err)
	}
	q, err := vector.Encode(vector.New[float32](1, 0))
	if err != nil {
		t.Fatalf("Encode q failed: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO vectors(id, kind, dim, data) VALUES
		('d1', ?, 2, ?),
		('d2', ?, 2, ?)`, int64(vector.KindFloat32), e1, int64(vector.KindFloat32), e2); err != nil {
		t.Fatalf("insert into vectors failed: %v", err)
	}

	// Order by cosine similarity to q in descending order; d1 should be first.
	rows, err := db.Query(`SELECT id FROM vectors ORDER BY vec_cosine(data, ?) DESC`, q)
	if err != nil {
		t.Fatalf("ORDER BY vec_cosine query failed: %v", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("scan id failed: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err: %v", err)
	}

	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	if ids[0] != "d1" || ids[1] != "d2" {
		t.Fatalf("ORDER BY vec_cosine returned ids=%v, want [d1 d2]", ids)
	}
}

// TestSQLOverStoreRows checks that rows written by SQLiteStore can be read
// back through the SQL functions.
func TestSQLOverStoreRows(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open failed: %v", err)
	}
	defer db.Close()
	store, err := vector.NewSQLiteStore[int64](db)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	_, err = store.Put(context.Background(), []vector.Record[int64]{
		{ID: "a", Vector: vector.New[int64](3, 4)},
		{ID: "b", Vector: vector.New[int64](1, 2)},
	})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	q, _ := vector.Encode(vector.New[int64](1, 1))
	var (
		id   string
		norm float64
		dot  int64
	)
	err = db.QueryRow(`SELECT id, vec_norm(data), vec_dot(data, ?) FROM vectors ORDER BY vec_dot(data, ?) DESC LIMIT 1`, q, q).Scan(&id, &norm, &dot)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if id != "a" || norm != 5 || dot != 7 {
		t.Fatalf("got (%s, %v, %d), want (a, 5, 7)", id, norm, dot)
	}
}
