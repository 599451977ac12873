package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const createReservation = `INSERT INTO reserved_books (book_id, member_id, reserve_date) VALUES (?, ?, ?)`

type CreateReservationParams struct {
	BookID      int64
	MemberID    int64
	ReserveDate Date
}

func (q *Queries) CreateReservation(ctx context.Context, arg CreateReservationParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(createReservation), arg.BookID, arg.MemberID, arg.ReserveDate)
	return errors.Wrap(err, "create reservation")
}

const listReservations = `SELECT id, book_id, member_id, reserve_date FROM reserved_books ORDER BY id`

func (q *Queries) ListReservations(ctx context.Context) ([]ReservedBook, error) {
	reservations := []ReservedBook{}
	if err := sqlx.SelectContext(ctx, q.db, &reservations, listReservations); err != nil {
		return nil, errors.Wrap(err, "list reservations")
	}
	return reservations, nil
}
