// Package folders provides the SQL-backed folder repository used by the
// bulk import pipeline.
package folders

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Columns is the number of bind parameters per folder row.
const Columns = 5

// SQLRepository implements folder storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepository constructs a repository bound to the given DBTX, rendering
// placeholders for dialect.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// InsertBatch inserts all rows in a single multi-row statement. A row whose
// id already exists is left untouched and not counted.
func (r *SQLRepository) InsertBatch(ctx context.Context, rows []*models.Folder) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO folders (id, user_id, name, created_at, updated_at) VALUES ` +
		r.dialect.ValuesList(len(rows), Columns) +
		` ON CONFLICT (id) DO NOTHING`

	args := make([]any, 0, len(rows)*Columns)
	for _, f := range rows {
		args = append(args, f.ID, f.UserID, f.Name, f.CreatedAt, f.UpdatedAt)
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
