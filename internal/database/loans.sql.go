package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const createIssuedBook = `INSERT INTO issued_book (book_id, member_id, issue_date, due_date) VALUES (?, ?, ?, ?)`

type CreateIssuedBookParams struct {
	BookID    int64
	MemberID  int64
	IssueDate string
	DueDate   string
}

// CreateIssuedBook does not look at existing loans: the same book may be
// issued any number of times.
func (q *Queries) CreateIssuedBook(ctx context.Context, arg CreateIssuedBookParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(createIssuedBook), arg.BookID, arg.MemberID, arg.IssueDate, arg.DueDate)
	return errors.Wrap(err, "create issued book")
}

const listIssuedBooks = `SELECT id, book_id, member_id, issue_date, due_date FROM issued_book ORDER BY id`

func (q *Queries) ListIssuedBooks(ctx context.Context) ([]IssuedBook, error) {
	loans := []IssuedBook{}
	if err := sqlx.SelectContext(ctx, q.db, &loans, listIssuedBooks); err != nil {
		return nil, errors.Wrap(err, "list issued books")
	}
	return loans, nil
}
