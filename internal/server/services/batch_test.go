package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
)

func TestPersistBatch_Chunks(t *testing.T) {
	var sizes []int
	insert := func(ctx context.Context, rows []int) (int64, error) {
		sizes = append(sizes, len(rows))
		return int64(len(rows)), nil
	}

	n, err := persistBatch(context.Background(), []int{1, 2, 3, 4, 5}, 2, insert)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, []int{2, 2, 1}, sizes)
}

func TestPersistBatch_UnderChunkSizeIsOneCall(t *testing.T) {
	calls := 0
	insert := func(ctx context.Context, rows []int) (int64, error) {
		calls++
		return 0, nil
	}

	_, err := persistBatch(context.Background(), []int{1, 2, 3}, 1000, insert)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPersistBatch_EmptyIsNoop(t *testing.T) {
	insert := func(ctx context.Context, rows []int) (int64, error) {
		t.Fatal("insert must not be called for an empty batch")
		return 0, nil
	}

	n, err := persistBatch(context.Background(), nil, 10, insert)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPersistBatch_StorageFault(t *testing.T) {
	insert := func(ctx context.Context, rows []int) (int64, error) {
		return 0, errors.New("connection reset")
	}

	_, err := persistBatch(context.Background(), []int{1}, 10, insert)
	require.ErrorIs(t, err, common.ErrStorage)
	assert.False(t, common.IsClientFault(err))
	assert.Contains(t, err.Error(), "connection reset")
}
