package utilities

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the postgres error code for unique_violation
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err was caused by a unique-constraint
// violation. Insert-first callers use this as the duplicate signal instead of
// querying for existence beforehand, which would race with concurrent writers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
