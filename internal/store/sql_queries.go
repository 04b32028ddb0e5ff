package store

import (
	sq "github.com/Masterminds/squirrel"
)

const internshipsTable = "internships"

var internshipColumns = []string{"identifier", "status", "created_at"}

// findInternshipByIdentifierQuery builds the case-insensitive lookup for one
// identifier in the placeholder style of the target driver.
func findInternshipByIdentifierQuery(placeholder sq.PlaceholderFormat, identifier string) (string, []any, error) {
	return sq.Select(internshipColumns...).
		From(internshipsTable).
		Where(sq.Expr("lower(identifier) = lower(?)", identifier)).
		Limit(1).
		PlaceholderFormat(placeholder).
		ToSql()
}
