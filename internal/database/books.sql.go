package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const createBook = `INSERT INTO books (title, author, isbn) VALUES (?, ?, ?)`

type CreateBookParams struct {
	Title  string
	Author string
	ISBN   string
}

func (q *Queries) CreateBook(ctx context.Context, arg CreateBookParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(createBook), arg.Title, arg.Author, arg.ISBN)
	return errors.Wrap(err, "create book")
}

const listBooks = `SELECT id, title, author, isbn FROM books ORDER BY id`

func (q *Queries) ListBooks(ctx context.Context) ([]Book, error) {
	books := []Book{}
	if err := sqlx.SelectContext(ctx, q.db, &books, listBooks); err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	return books, nil
}
