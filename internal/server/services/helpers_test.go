package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/config"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/ciphers"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/folders"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/repomanager"
)

// -------- test fakes --------

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

type fakeFoldersRepo struct {
	calls [][]*models.Folder
	err   error
}

func (f *fakeFoldersRepo) InsertBatch(ctx context.Context, rows []*models.Folder) (int64, error) {
	f.calls = append(f.calls, rows)
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(rows)), nil
}

type fakeCiphersRepo struct {
	calls [][]*models.Cipher
	err   error
}

func (f *fakeCiphersRepo) InsertBatch(ctx context.Context, rows []*models.Cipher) (int64, error) {
	f.calls = append(f.calls, rows)
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(rows)), nil
}

// fakeRepoManager serves the given repos; a nil repo falls through to the
// embedded manager, so a real SQLite manager can be partially replaced.
type fakeRepoManager struct {
	repomanager.RepositoryManager
	folders folders.Repository
	ciphers ciphers.Repository
}

func (m *fakeRepoManager) Dialect() dbx.Dialect { return dbx.DialectSQLite }

func (m *fakeRepoManager) Folders(db dbx.DBTX) folders.Repository {
	if m.folders != nil {
		return m.folders
	}
	return m.RepositoryManager.Folders(db)
}

func (m *fakeRepoManager) Ciphers(db dbx.DBTX) ciphers.Repository {
	if m.ciphers != nil {
		return m.ciphers
	}
	return m.RepositoryManager.Ciphers(db)
}

type fakeArchiver struct {
	calls int
	owner string
	err   error
}

func (a *fakeArchiver) Archive(ctx context.Context, ownerID string, req *models.ImportRequest) (string, error) {
	a.calls++
	a.owner = ownerID
	return "imports/" + ownerID + "/x.json", a.err
}

// -------- helpers --------

var fixedNow = time.Date(2024, 3, 9, 14, 30, 15, 123_456_789, time.UTC)

func testConfig(atomic, strict bool, chunk int) *config.Config {
	return &config.Config{AtomicImport: atomic, StrictRelationships: strict, ImportChunkSize: chunk}
}

func newTestService(db *sql.DB, rm repomanager.RepositoryManager, cfg *config.Config, a BundleArchiver) *ImportService {
	s := NewImportService(db, rm, cfg, nopLogger{}, a)
	s.now = func() time.Time { return fixedNow }
	return s
}

func openSQLite(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	rm, err := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, err)
	require.NoError(t, rm.RunMigrations(context.Background(), db, nopLogger{}))
	return db, rm
}

func sqliteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _ := openSQLite(t)
	return db
}

// blockingArchiver waits for ctx to end and records how it ended.
type blockingArchiver struct {
	hadDeadline bool
	err         error
}

func (a *blockingArchiver) Archive(ctx context.Context, ownerID string, req *models.ImportRequest) (string, error) {
	_, a.hadDeadline = ctx.Deadline()
	<-ctx.Done()
	a.err = ctx.Err()
	return "", a.err
}

func count(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

func strptr(s string) *string { return &s }

func loginCipher(owner, name string) models.ImportCipher {
	return models.ImportCipher{
		EncryptedFor: owner,
		Type:         models.CipherTypeLogin,
		Name:         name,
		Login:        []byte(`{"username":"2.enc|u","password":"2.enc|p"}`),
	}
}
