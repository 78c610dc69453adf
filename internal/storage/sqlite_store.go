package storage

import (
	"github.com/julianstephens/tend/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	*sqlite.Store
}

// NewSQLiteStore creates a SQLite-backed Provider at the given file path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{Store: sqlite.NewStore(path)}
}

// WithTx runs fn inside a single sqlite transaction.
func (s *SQLiteStore) WithTx(fn func(View) error) error {
	return s.Store.WithTx(func(q *sqlite.Queries) error {
		return fn(q)
	})
}

var _ Provider = (*SQLiteStore)(nil)
