package services

import (
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// materializeFolders turns the bundle's folders into rows owned by ownerID.
// Client ids are kept as-is; they are the idempotency key on insert.
func materializeFolders(ownerID string, in []models.ImportFolder, now time.Time) []*models.Folder {
	out := make([]*models.Folder, 0, len(in))
	for _, f := range in {
		out = append(out, &models.Folder{
			ID:        f.ID,
			UserID:    ownerID,
			Name:      f.Name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}
