package services

import (
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// resolveRelationships sets FolderID on the ciphers named by the bundle's
// index pairs, in submission order, so a later pair for the same cipher
// wins. Pairs pointing outside the bundle are skipped unless strict is set,
// in which case the first one fails the whole import.
func resolveRelationships(req *models.ImportRequest, strict bool) error {
	for i, rel := range req.FolderRelationships {
		if rel.Key >= uint(len(req.Ciphers)) || rel.Value >= uint(len(req.Folders)) {
			if strict {
				return fmt.Errorf("%w: pair %d (key %d, value %d)", common.ErrInvalidRelationship, i, rel.Key, rel.Value)
			}
			continue
		}
		folderID := req.Folders[rel.Value].ID
		req.Ciphers[rel.Key].FolderID = &folderID
	}
	return nil
}
