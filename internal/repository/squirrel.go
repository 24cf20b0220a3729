package repository

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
)

// psql is the shared Squirrel statement builder configured for PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ErrConditionNotMet is returned when a conditional write matched no row.
// Callers re-read the row to find out why.
var ErrConditionNotMet = errors.New("conditional write matched no row")

// qualify prefixes each column with a table alias.
func qualify(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
