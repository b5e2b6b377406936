package grpc

import (
	"encoding/json"
	"errors"
	"fmt"

	pb "github.com/dmitrijs2005/vaultkeeper/internal/proto"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

var errMalformedBundle = errors.New("malformed bundle")

// requestFromProto converts the wire bundle into the model the import
// pipeline works on. Payload parts must be empty or valid JSON.
func requestFromProto(in *pb.ImportRequest) (*models.ImportRequest, error) {
	req := &models.ImportRequest{
		Folders:             make([]models.ImportFolder, 0, len(in.GetFolders())),
		Ciphers:             make([]models.ImportCipher, 0, len(in.GetCiphers())),
		FolderRelationships: make([]models.Relationship, 0, len(in.GetFolderRelationships())),
	}

	for _, f := range in.GetFolders() {
		req.Folders = append(req.Folders, models.ImportFolder{ID: f.GetId(), Name: f.GetName()})
	}

	for i, c := range in.GetCiphers() {
		mc := models.ImportCipher{
			EncryptedFor:   c.GetEncryptedFor(),
			Type:           models.CipherType(c.GetType()),
			Name:           c.GetName(),
			Notes:          c.Notes,
			OrganizationID: c.OrganizationId,
			FolderID:       c.FolderId,
			Favorite:       c.GetFavorite(),
		}
		if c.Reprompt != nil {
			r := int(*c.Reprompt)
			mc.Reprompt = &r
		}

		parts := []struct {
			name string
			src  []byte
			dst  *json.RawMessage
		}{
			{"login", c.GetLogin(), &mc.Login},
			{"card", c.GetCard(), &mc.Card},
			{"identity", c.GetIdentity(), &mc.Identity},
			{"secureNote", c.GetSecureNote(), &mc.SecureNote},
			{"fields", c.GetFields(), &mc.Fields},
			{"passwordHistory", c.GetPasswordHistory(), &mc.PasswordHistory},
		}
		for _, p := range parts {
			if len(p.src) == 0 {
				continue
			}
			if !json.Valid(p.src) {
				return nil, fmt.Errorf("%w: cipher %d: %s is not valid JSON", errMalformedBundle, i, p.name)
			}
			*p.dst = json.RawMessage(p.src)
		}

		req.Ciphers = append(req.Ciphers, mc)
	}

	for _, r := range in.GetFolderRelationships() {
		req.FolderRelationships = append(req.FolderRelationships, models.Relationship{
			Key:   uint(r.GetKey()),
			Value: uint(r.GetValue()),
		})
	}

	return req, nil
}
