package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		author VARCHAR(255) NOT NULL,
		isbn VARCHAR(32) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		contact VARCHAR(64) NOT NULL,
		fine_amount NUMERIC(10, 2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS issued_book (
		id BIGSERIAL PRIMARY KEY,
		book_id BIGINT NOT NULL REFERENCES books (id),
		member_id BIGINT NOT NULL REFERENCES members (id),
		issue_date VARCHAR(64) NOT NULL,
		due_date VARCHAR(64) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reserved_books (
		id BIGSERIAL PRIMARY KEY,
		book_id BIGINT NOT NULL REFERENCES books (id),
		member_id BIGINT NOT NULL REFERENCES members (id),
		reserve_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS study_rooms_booking (
		id BIGSERIAL PRIMARY KEY,
		room_id BIGINT NOT NULL,
		member_id BIGINT NOT NULL REFERENCES members (id),
		booking_date DATE NOT NULL,
		duration_hours NUMERIC(4, 2) NOT NULL CHECK (duration_hours BETWEEN 1 AND 8),
		UNIQUE (room_id, booking_date)
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		isbn TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		contact TEXT NOT NULL,
		fine_amount REAL NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS issued_book (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		book_id INTEGER NOT NULL REFERENCES books (id),
		member_id INTEGER NOT NULL REFERENCES members (id),
		issue_date TEXT NOT NULL,
		due_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reserved_books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		book_id INTEGER NOT NULL REFERENCES books (id),
		member_id INTEGER NOT NULL REFERENCES members (id),
		reserve_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS study_rooms_booking (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_id INTEGER NOT NULL,
		member_id INTEGER NOT NULL REFERENCES members (id),
		booking_date TEXT NOT NULL,
		duration_hours REAL NOT NULL CHECK (duration_hours BETWEEN 1 AND 8),
		UNIQUE (room_id, booking_date)
	)`,
}

// Schema returns the CREATE TABLE statements for the given driver name.
func Schema(driverName string) []string {
	if driverName == "sqlite" {
		return sqliteSchema
	}
	return postgresSchema
}

// ApplySchema creates any missing table. Existing tables are left untouched.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin schema transaction")
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range Schema(db.DriverName()) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "apply schema")
		}
	}
	return errors.Wrap(tx.Commit(), "commit schema")
}
