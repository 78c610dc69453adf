package storage

import (
	"github.com/julianstephens/tend/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface.
type PostgresStore struct {
	*postgres.Store
}

// NewPostgresStore creates a PostgreSQL-backed Provider for the given
// connection string.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{Store: postgres.NewStore(connStr)}
}

// WithTx runs fn inside a single postgres transaction.
func (s *PostgresStore) WithTx(fn func(View) error) error {
	return s.Store.WithTx(func(q *postgres.Queries) error {
		return fn(q)
	})
}

var _ Provider = (*PostgresStore)(nil)
