package repomanager

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/ciphers"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/folders"
)

// SQLiteRepositoryManager vends repositories for an embedded SQLite
// database, for single-node deployments and local development.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Dialect() dbx.Dialect {
	return dbx.DialectSQLite
}

func (m *SQLiteRepositoryManager) Folders(db dbx.DBTX) folders.Repository {
	return folders.NewSQLRepository(db, dbx.DialectSQLite)
}

func (m *SQLiteRepositoryManager) Ciphers(db dbx.DBTX) ciphers.Repository {
	return ciphers.NewSQLRepository(db, dbx.DialectSQLite)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	return runMigrations(ctx, db, dbx.DialectSQLite, logger)
}

func NewSQLiteRepositoryManager() (RepositoryManager, error) {
	return &SQLiteRepositoryManager{}, nil
}
