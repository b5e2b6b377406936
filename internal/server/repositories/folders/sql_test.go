package folders

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T, d dbx.Dialect) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewSQLRepository(db, d), mock, db
}

var now = time.Date(2024, 5, 1, 10, 0, 0, 123_000_000, time.UTC)

func folder(id string) *models.Folder {
	return &models.Folder{ID: id, UserID: "u1", Name: "2.enc|" + id, CreatedAt: now, UpdatedAt: now}
}

func TestInsertBatch_PostgresMultiRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, dbx.DialectPostgres)
	defer db.Close()

	q := regexp.QuoteMeta(`INSERT INTO folders (id, user_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5), ($6, $7, $8, $9, $10) ON CONFLICT (id) DO NOTHING`)

	mock.ExpectExec(q).
		WithArgs("f1", "u1", "2.enc|f1", now, now, "f2", "u1", "2.enc|f2", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.InsertBatch(context.Background(), []*models.Folder{folder("f1"), folder("f2")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "a conflicting id is skipped, not an error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatch_SQLitePlaceholders(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, dbx.DialectSQLite)
	defer db.Close()

	q := regexp.QuoteMeta(`VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`)

	mock.ExpectExec(q).
		WithArgs("f1", "u1", "2.enc|f1", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.InsertBatch(context.Background(), []*models.Folder{folder("f1")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatch_EmptyDoesNothing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, dbx.DialectPostgres)
	defer db.Close()

	n, err := repo.InsertBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatch_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, dbx.DialectPostgres)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO folders .* ON CONFLICT \(id\) DO NOTHING`).
		WillReturnError(errors.New("db is down"))

	_, err := repo.InsertBatch(context.Background(), []*models.Folder{folder("f1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is down")
}

func TestInsertBatch_RowsAffectedError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, dbx.DialectPostgres)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO folders`).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("ra err")))

	_, err := repo.InsertBatch(context.Background(), []*models.Folder{folder("f1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows affected error")
}
