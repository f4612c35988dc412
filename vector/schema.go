package vector

import (
	"database/sql"
)

const vectorsSchema = `
CREATE TABLE IF NOT EXISTS vectors (
    id TEXT PRIMARY KEY,
    kind INTEGER NOT NULL,
    dim INTEGER NOT NULL,
    meta TEXT,
    data BLOB
);
`

// EnsureSchema creates the vectors table in the provided database if it
// does not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(vectorsSchema)
	return err
}
