package ciphers

import (
	"context"

	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

type Repository interface {
	// InsertBatch writes rows with one statement, skipping ids that
	// already exist, and returns the number of rows actually inserted.
	InsertBatch(ctx context.Context, rows []*models.Cipher) (int64, error)
}
