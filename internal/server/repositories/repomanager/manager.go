package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/ciphers"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/folders"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(context.Context, *sql.DB, logging.Logger) error
	Folders(db dbx.DBTX) folders.Repository
	Ciphers(db dbx.DBTX) ciphers.Repository
}

// New returns the RepositoryManager for dialect.
func New(dialect dbx.Dialect) (RepositoryManager, error) {
	switch dialect {
	case dbx.DialectPostgres:
		return NewPostgresRepositoryManager()
	case dbx.DialectSQLite:
		return NewSQLiteRepositoryManager()
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// gooseLogger routes goose's progress output through the app logger.
type gooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.logger.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.logger.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}

// runMigrations points goose at the embedded migrations of dialect and
// applies every pending one.
func runMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect, logger logging.Logger) error {
	dir, gooseDialect, err := migrations.Dir(dialect)
	if err != nil {
		return err
	}
	goose.SetLogger(gooseLogger{ctx: ctx, logger: logger.With("module", "migrations")})
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(gooseDialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, dir)
}
