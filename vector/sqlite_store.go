package vector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/viant/vecmath/internal/logger"
)

// SQLiteStore is a Store backed by the vectors table of a SQLite database.
// Each store reads and writes vectors of a single element kind; rows of other
// kinds are invisible to List and fail Get with a TypeError.
type SQLiteStore[T Scalar] struct {
	db     *sql.DB
	kind   Kind
	logger *logger.Logger
}

// StoreOption configures a SQLiteStore.
type StoreOption func(*storeOptions)

type storeOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for store operations.
func WithLogger(l *slog.Logger) StoreOption {
	return func(o *storeOptions) { o.logger = l }
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the vectors
// schema exists in the provided database.
func NewSQLiteStore[T Scalar](db *sql.DB, opts ...StoreOption) (*SQLiteStore[T], error) {
	if db == nil {
		return nil, fmt.Errorf("vector: db is nil")
	}
	kind := KindFor[T]()
	if kind == KindUnknown {
		var zero T
		return nil, &TypeError{Expected: "encodable element kind", Got: fmt.Sprintf("%T", zero)}
	}
	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore[T]{db: db, kind: kind, logger: logger.From(o.logger).WithKind(kind)}, nil
}

// Put inserts or replaces records in a single transaction. Records without
// an ID are assigned a random UUID.
func (s *SQLiteStore[T]) Put(ctx context.Context, records []Record[T]) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO vectors(id, kind, dim, meta, data) VALUES(?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  kind = excluded.kind,
  dim = excluded.dim,
  meta = excluded.meta,
  data = excluded.data`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(records))
	for _, r := range records {
		if r.Vector == nil {
			return nil, &TypeError{Expected: fmt.Sprintf("%T", r.Vector), Got: "nil"}
		}
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		blob, err := Encode(r.Vector)
		if err == nil {
			_, err = stmt.ExecContext(ctx, id, int64(s.kind), r.Vector.Len(), r.Meta, blob)
		}
		s.logger.LogPut(ctx, id, r.Vector.Len(), err)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Get loads the record with the given ID.
func (s *SQLiteStore[T]) Get(ctx context.Context, id string) (Record[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		kind int64
		meta sql.NullString
		blob []byte
	)
	err := s.db.QueryRowContext(ctx, `SELECT kind, meta, data FROM vectors WHERE id = ?`, id).Scan(&kind, &meta, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err == nil && Kind(kind) != s.kind {
		err = &TypeError{Expected: s.kind.String() + " vector", Got: Kind(kind).String() + " vector"}
	}
	var v *Vector[T]
	if err == nil {
		v, err = s.decode(blob)
	}
	s.logger.LogGet(ctx, id, err)
	if err != nil {
		return Record[T]{}, err
	}
	return Record[T]{ID: id, Vector: v, Meta: meta.String}, nil
}

// List returns up to limit records of the store's kind in insertion order.
func (s *SQLiteStore[T]) List(ctx context.Context, limit int) ([]Record[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, meta, data FROM vectors WHERE kind = ? ORDER BY rowid LIMIT ?`, int64(s.kind), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record[T]
	for rows.Next() {
		var (
			r    Record[T]
			meta sql.NullString
			blob []byte
		)
		if err := rows.Scan(&r.ID, &meta, &blob); err != nil {
			return nil, err
		}
		if r.Vector, err = s.decode(blob); err != nil {
			return nil, fmt.Errorf("vector: decode %s: %w", r.ID, err)
		}
		r.Meta = meta.String
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes a record by ID.
func (s *SQLiteStore[T]) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("vector: Remove called with empty id")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM vectors WHERE id = ?`, id)
	if err == nil {
		var n int64
		if n, err = res.RowsAffected(); err == nil && n == 0 {
			err = fmt.Errorf("%w: %s", ErrNotFound, id)
		}
	}
	s.logger.LogRemove(ctx, id, err)
	return err
}

func (s *SQLiteStore[T]) decode(blob []byte) (*Vector[T], error) {
	v, err := Decode[T](blob)
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = New[T]()
	}
	return v, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store[float64] = (*SQLiteStore[float64])(nil)
