// Package repomanager vends repository implementations per database
// dialect and applies schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/ciphers"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/folders"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Dialect() dbx.Dialect {
	return dbx.DialectPostgres
}

// Folders returns a folders.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Folders(db dbx.DBTX) folders.Repository {
	return folders.NewSQLRepository(db, dbx.DialectPostgres)
}

// Ciphers returns a ciphers.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Ciphers(db dbx.DBTX) ciphers.Repository {
	return ciphers.NewSQLRepository(db, dbx.DialectPostgres)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	return runMigrations(ctx, db, dbx.DialectPostgres, logger)
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
