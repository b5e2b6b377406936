// Package migrations embeds the goose SQL migrations for every supported
// database dialect.
package migrations

import (
	"embed"
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
)

// Migrations holds one directory of goose migrations per dialect.
//
//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Dir returns the directory inside Migrations and the goose dialect name
// for d.
func Dir(d dbx.Dialect) (dir, gooseDialect string, err error) {
	switch d {
	case dbx.DialectPostgres:
		return "postgres", "pgx", nil
	case dbx.DialectSQLite:
		return "sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("no migrations for dialect %q", d)
	}
}
