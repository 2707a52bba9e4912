package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// IsConstraintViolation reports whether err (or anything it wraps) is an
// integrity constraint violation raised by SQLite or Postgres, such as a
// foreign key pointing at a row that does not exist.
func IsConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 23: integrity constraint violation.
		return strings.HasPrefix(pgErr.Code, "23")
	}

	return false
}
