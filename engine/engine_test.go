package engine

import "testing"

// TestOpenInMemory verifies that we can open an in-memory SQLite database
// using the modernc.org/sqlite driver and execute a trivial statement.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t(x INTEGER)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO t(x) VALUES (1),(2),(3)"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}

	// A second query must see the same in-memory database.
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM t").Scan(&n); err != nil {
		t.Fatalf("SELECT COUNT failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("COUNT(*) = %d, want 3", n)
	}
}

// TestOpenFile verifies that a file database keeps its rows across reopen.
func TestOpenFile(t *testing.T) {
	path := t.TempDir() + "/vec.sqlite"
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", path, err)
	}
	if _, err := db.Exec("CREATE TABLE t(x INTEGER); INSERT INTO t(x) VALUES (42)"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	_ = db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()
	var x int
	if err := db.QueryRow("SELECT x FROM t").Scan(&x); err != nil || x != 42 {
		t.Fatalf("SELECT x = %d, %v; want 42", x, err)
	}
}
