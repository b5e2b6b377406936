package api

import (
	"encoding/json"

	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Clients send more attributes than the server stores, so unknown
// properties are accepted and dropped.

type importFolderDTO struct {
	_    struct{} `json:"-" additionalProperties:"true"`
	ID   string   `json:"id" doc:"Client-chosen folder id, stable across imports"`
	Name string   `json:"name" doc:"Encrypted folder name"`
}

type importCipherDTO struct {
	_               struct{}        `json:"-" additionalProperties:"true"`
	EncryptedFor    string          `json:"encryptedFor" doc:"Subject the cipher was encrypted for"`
	Type            int             `json:"type" doc:"1 login, 2 secure note, 3 card, 4 identity"`
	Name            string          `json:"name" doc:"Encrypted name"`
	Notes           *string         `json:"notes,omitempty" nullable:"true"`
	Login           json.RawMessage `json:"login,omitempty"`
	Card            json.RawMessage `json:"card,omitempty"`
	Identity        json.RawMessage `json:"identity,omitempty"`
	SecureNote      json.RawMessage `json:"secureNote,omitempty"`
	Fields          json.RawMessage `json:"fields,omitempty"`
	PasswordHistory json.RawMessage `json:"passwordHistory,omitempty"`
	Reprompt        *int            `json:"reprompt,omitempty" nullable:"true"`
	OrganizationID  *string         `json:"organizationId,omitempty" nullable:"true"`
	FolderID        *string         `json:"folderId,omitempty" nullable:"true"`
	Favorite        bool            `json:"favorite,omitempty"`
}

type relationshipDTO struct {
	Key   uint `json:"key" doc:"Cipher index in this request"`
	Value uint `json:"value" doc:"Folder index in this request"`
}

type importRequestDTO struct {
	_                   struct{}          `json:"-" additionalProperties:"true"`
	Folders             []importFolderDTO `json:"folders,omitempty"`
	Ciphers             []importCipherDTO `json:"ciphers,omitempty"`
	FolderRelationships []relationshipDTO `json:"folderRelationships,omitempty"`
}

type importInput struct {
	Body importRequestDTO
}

func (d *importRequestDTO) toModel() *models.ImportRequest {
	req := &models.ImportRequest{
		Folders:             make([]models.ImportFolder, 0, len(d.Folders)),
		Ciphers:             make([]models.ImportCipher, 0, len(d.Ciphers)),
		FolderRelationships: make([]models.Relationship, 0, len(d.FolderRelationships)),
	}
	for _, f := range d.Folders {
		req.Folders = append(req.Folders, models.ImportFolder{ID: f.ID, Name: f.Name})
	}
	for _, c := range d.Ciphers {
		req.Ciphers = append(req.Ciphers, models.ImportCipher{
			EncryptedFor:    c.EncryptedFor,
			Type:            models.CipherType(c.Type),
			Name:            c.Name,
			Notes:           c.Notes,
			Login:           c.Login,
			Card:            c.Card,
			Identity:        c.Identity,
			SecureNote:      c.SecureNote,
			Fields:          c.Fields,
			PasswordHistory: c.PasswordHistory,
			Reprompt:        c.Reprompt,
			OrganizationID:  c.OrganizationID,
			FolderID:        c.FolderID,
			Favorite:        c.Favorite,
		})
	}
	for _, r := range d.FolderRelationships {
		req.FolderRelationships = append(req.FolderRelationships, models.Relationship{Key: r.Key, Value: r.Value})
	}
	return req
}
