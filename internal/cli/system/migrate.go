package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/julianstephens/tend/internal/cli"
	"github.com/julianstephens/tend/internal/migration"
	"github.com/julianstephens/tend/internal/storage"
	"github.com/julianstephens/tend/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer ctx.Store.Close()

	var db *sql.DB
	var dialect string
	switch s := ctx.Store.(type) {
	case *storage.SQLiteStore:
		db, dialect = s.GetDB(), "sqlite"
	case *storage.PostgresStore:
		db, dialect = s.GetDB(), "postgres"
	default:
		return fmt.Errorf("unsupported storage backend")
	}
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("failed to access %s migrations: %w", dialect, err)
	}

	runner := migration.NewRunner(db, subFS)
	count, err := runner.Apply()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("Successfully applied %d migration(s).\n", count)
	}
	return nil
}
