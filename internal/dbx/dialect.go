package dbx

import (
	"strconv"
	"strings"
)

// Dialect names a supported SQL backend. The value doubles as the
// database/sql driver name.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite"
)

// Placeholder returns the n-th (1-based) bind parameter marker.
func (d Dialect) Placeholder(n int) string {
	if d == DialectSQLite {
		return "?"
	}
	return "$" + strconv.Itoa(n)
}

// ValuesList renders a multi-row VALUES body for rows tuples of cols
// parameters each, e.g. "($1, $2), ($3, $4)".
func (d Dialect) ValuesList(rows, cols int) string {
	var b strings.Builder
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(d.Placeholder(n))
			n++
		}
		b.WriteByte(')')
	}
	return b.String()
}

// MaxBindParams is the largest number of bind parameters one statement may
// carry: 65535 for PostgreSQL, 32766 for SQLite (SQLITE_MAX_VARIABLE_NUMBER).
func (d Dialect) MaxBindParams() int {
	if d == DialectSQLite {
		return 32766
	}
	return 65535
}

// MaxRows is the largest number of rows of cols parameters each that fit
// in one statement.
func (d Dialect) MaxRows(cols int) int {
	if cols <= 0 {
		return d.MaxBindParams()
	}
	return d.MaxBindParams() / cols
}
