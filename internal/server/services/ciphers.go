package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// newCipherID returns a random (version 4) UUID.
func newCipherID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// materializeCiphers validates and converts the bundle's ciphers into rows.
// Any cipher not encrypted for ownerID rejects the whole batch.
func materializeCiphers(ownerID string, in []models.ImportCipher, now time.Time, newID func() (string, error)) ([]*models.Cipher, error) {
	out := make([]*models.Cipher, 0, len(in))
	for i := range in {
		c := &in[i]
		if c.EncryptedFor != ownerID {
			return nil, common.ErrOwnershipMismatch
		}

		data, err := json.Marshal(c.Data())
		if err != nil {
			return nil, fmt.Errorf("%w: cipher %d (%s): %w", common.ErrSerialization, i, c.Type, err)
		}

		id, err := newID()
		if err != nil {
			return nil, fmt.Errorf("%w: cipher id: %w", common.ErrorInternal, err)
		}

		out = append(out, &models.Cipher{
			ID:             id,
			UserID:         ownerID,
			OrganizationID: c.OrganizationID,
			Type:           c.Type,
			Data:           data,
			Favorite:       c.Favorite,
			FolderID:       c.FolderID,
			CreatedAt:      now,
			UpdatedAt:      now,

			Object:       models.CipherObject,
			Edit:         true,
			ViewPassword: true,
		})
	}
	return out, nil
}
