package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
)

// persistBatch hands rows to insert in chunks of at most chunkSize and
// returns the total number of rows inserted. Nothing is called for an
// empty batch. Any failure is reported as common.ErrStorage for the batch
// as a whole.
func persistBatch[T any](ctx context.Context, rows []T, chunkSize int, insert func(context.Context, []T) (int64, error)) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if chunkSize <= 0 {
		chunkSize = len(rows)
	}

	var total int64
	for start := 0; start < len(rows); start += chunkSize {
		end := min(start+chunkSize, len(rows))
		n, err := insert(ctx, rows[start:end])
		if err != nil {
			return total, fmt.Errorf("%w: %w", common.ErrStorage, err)
		}
		total += n
	}
	return total, nil
}
