package models

import "time"

// Folder is a stored folder row owned by UserID.
type Folder struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
