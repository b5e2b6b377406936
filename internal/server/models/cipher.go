// Package models defines server-side data models: the import bundle as
// received from clients and the rows persisted in the database.
package models

import (
	"encoding/json"
	"time"
)

// CipherObject is the object tag every stored cipher carries.
const CipherObject = "cipher"

// Cipher is a stored vault item. Data holds the serialized CipherData.
//
// Object, OrganizationUseTotp, Edit, ViewPassword and CollectionIDs are
// presentation attributes fixed at creation and not written to storage.
type Cipher struct {
	ID             string
	UserID         string
	OrganizationID *string
	Type           CipherType
	Data           json.RawMessage
	Favorite       bool
	FolderID       *string
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Object              string
	OrganizationUseTotp bool
	Edit                bool
	ViewPassword        bool
	CollectionIDs       []string
}
