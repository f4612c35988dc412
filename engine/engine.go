package engine

import (
	"database/sql"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Open opens a SQLite database using the modernc.org/sqlite driver with the
// vec_* functions registered.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:"; the pool is then limited to one connection
// because every SQLite connection gets its own in-memory database.
func Open(dsn string) (*sql.DB, error) {
	registerOnce.Do(func() { registerErr = RegisterVectorFunctions(nil) })
	if registerErr != nil {
		return nil, registerErr
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
