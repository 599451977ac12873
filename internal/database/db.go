// Package database holds the SQL for every record type and a thin Queries
// type over a sqlx handle. Statements are written with '?' placeholders and
// rebound for the connected driver.
package database

import (
	"github.com/jmoiron/sqlx"
)

func init() {
	// modernc.org/sqlite registers itself as "sqlite", which sqlx does not know.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type Queries struct {
	db sqlx.ExtContext
}

func New(db sqlx.ExtContext) *Queries {
	return &Queries{db: db}
}

func (q *Queries) rebind(query string) string {
	return q.db.Rebind(query)
}
