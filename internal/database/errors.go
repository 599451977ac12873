package database

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err was raised by a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == pgUniqueViolation
	}
	if code, msg, ok := sqliteConstraint(err); ok {
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY ||
			strings.Contains(msg, "UNIQUE constraint failed")
	}
	return false
}

// IsForeignKeyViolation reports whether err was raised because a referenced
// book or member does not exist.
func IsForeignKeyViolation(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == pgForeignKeyViolation
	}
	if code, msg, ok := sqliteConstraint(err); ok {
		return code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
			strings.Contains(msg, "FOREIGN KEY constraint failed")
	}
	return false
}

func sqlState(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

func sqliteConstraint(err error) (int, string, bool) {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return 0, "", false
	}
	if liteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return 0, "", false
	}
	return liteErr.Code(), liteErr.Error(), true
}
