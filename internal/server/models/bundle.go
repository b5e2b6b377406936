package models

import "encoding/json"

// CipherType discriminates the shape of a cipher's payload. Values outside
// the known set are carried through untouched.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
)

// String returns a lowercase name for known types and "unknown" otherwise.
func (t CipherType) String() string {
	switch t {
	case CipherTypeLogin:
		return "login"
	case CipherTypeSecureNote:
		return "secure_note"
	case CipherTypeCard:
		return "card"
	case CipherTypeIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// ImportRequest is one bulk-import bundle as submitted by a client.
type ImportRequest struct {
	Folders             []ImportFolder `json:"folders"`
	Ciphers             []ImportCipher `json:"ciphers"`
	FolderRelationships []Relationship `json:"folderRelationships"`
}

// Empty reports whether the bundle carries neither folders nor ciphers.
func (r *ImportRequest) Empty() bool {
	return len(r.Folders) == 0 && len(r.Ciphers) == 0
}

// ImportFolder is a folder declared by the client. ID is client-chosen and
// stable across imports, so re-importing the same folder is a no-op.
type ImportFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImportCipher is a client-encrypted vault item. All payload fields are
// opaque ciphertext envelopes and are never inspected by the server.
type ImportCipher struct {
	EncryptedFor    string          `json:"encryptedFor"`
	Type            CipherType      `json:"type"`
	Name            string          `json:"name"`
	Notes           *string         `json:"notes,omitempty"`
	Login           json.RawMessage `json:"login,omitempty"`
	Card            json.RawMessage `json:"card,omitempty"`
	Identity        json.RawMessage `json:"identity,omitempty"`
	SecureNote      json.RawMessage `json:"secureNote,omitempty"`
	Fields          json.RawMessage `json:"fields,omitempty"`
	PasswordHistory json.RawMessage `json:"passwordHistory,omitempty"`
	Reprompt        *int            `json:"reprompt,omitempty"`
	OrganizationID  *string         `json:"organizationId,omitempty"`
	FolderID        *string         `json:"folderId,omitempty"`
	Favorite        bool            `json:"favorite"`
}

// Relationship assigns the cipher at index Key to the folder at index Value,
// both positions in the enclosing bundle.
type Relationship struct {
	Key   uint `json:"key"`
	Value uint `json:"value"`
}

// CipherData is the persisted payload of a cipher: exactly the opaque
// fields supplied by the client. Absent parts serialize as null.
type CipherData struct {
	Name            string          `json:"name"`
	Notes           *string         `json:"notes"`
	Login           json.RawMessage `json:"login"`
	Card            json.RawMessage `json:"card"`
	Identity        json.RawMessage `json:"identity"`
	SecureNote      json.RawMessage `json:"secureNote"`
	Fields          json.RawMessage `json:"fields"`
	PasswordHistory json.RawMessage `json:"passwordHistory"`
	Reprompt        *int            `json:"reprompt"`
}

// Data extracts the persisted payload of c.
func (c *ImportCipher) Data() CipherData {
	return CipherData{
		Name:            c.Name,
		Notes:           c.Notes,
		Login:           c.Login,
		Card:            c.Card,
		Identity:        c.Identity,
		SecureNote:      c.SecureNote,
		Fields:          c.Fields,
		PasswordHistory: c.PasswordHistory,
		Reprompt:        c.Reprompt,
	}
}
