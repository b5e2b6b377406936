package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClientFault(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ownership", ErrOwnershipMismatch, true},
		{"relationship wrapped", fmt.Errorf("relationship 3: %w", ErrInvalidRelationship), true},
		{"serialization", ErrSerialization, false},
		{"storage wrapped", fmt.Errorf("folders: %w", ErrStorage), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClientFault(tt.err))
		})
	}
}

func TestFaultClasses_AreDisjoint(t *testing.T) {
	assert.ErrorIs(t, ErrSerialization, ErrorInternal)
	assert.ErrorIs(t, ErrStorage, ErrorInternal)
	assert.NotErrorIs(t, ErrOwnershipMismatch, ErrorInternal)
	assert.NotErrorIs(t, ErrStorage, ErrorBadRequest)
}
