// Package ciphers provides the SQL-backed cipher repository used by the
// bulk import pipeline.
package ciphers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Columns is the number of bind parameters per cipher row.
const Columns = 9

// SQLRepository implements cipher storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepository constructs a repository bound to the given DBTX, rendering
// placeholders for dialect.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// InsertBatch inserts all rows in a single multi-row statement. Data is
// stored as JSON text; the presentation attributes of models.Cipher are
// not persisted.
func (r *SQLRepository) InsertBatch(ctx context.Context, rows []*models.Cipher) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO ciphers (id, user_id, organization_id, type, data, favorite, folder_id, created_at, updated_at) VALUES ` +
		r.dialect.ValuesList(len(rows), Columns) +
		` ON CONFLICT (id) DO NOTHING`

	args := make([]any, 0, len(rows)*Columns)
	for _, c := range rows {
		args = append(args,
			c.ID, c.UserID, c.OrganizationID, int64(c.Type), string(c.Data),
			c.Favorite, c.FolderID, c.CreatedAt, c.UpdatedAt)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
