package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// fine_amount is left to the column default.
const createMember = `INSERT INTO members (name, email, contact) VALUES (?, ?, ?)`

type CreateMemberParams struct {
	Name    string
	Email   string
	Contact string
}

func (q *Queries) CreateMember(ctx context.Context, arg CreateMemberParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(createMember), arg.Name, arg.Email, arg.Contact)
	return errors.Wrap(err, "create member")
}

const listMembers = `SELECT id, name, email, contact, fine_amount FROM members ORDER BY id`

func (q *Queries) ListMembers(ctx context.Context) ([]Member, error) {
	members := []Member{}
	if err := sqlx.SelectContext(ctx, q.db, &members, listMembers); err != nil {
		return nil, errors.Wrap(err, "list members")
	}
	return members, nil
}

const updateMemberFine = `UPDATE members SET fine_amount = ? WHERE id = ?`

type UpdateMemberFineParams struct {
	ID         int64
	FineAmount float64
}

// UpdateMemberFine returns the number of updated rows; an unknown id is not an error.
func (q *Queries) UpdateMemberFine(ctx context.Context, arg UpdateMemberFineParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, q.rebind(updateMemberFine), arg.FineAmount, arg.ID)
	if err != nil {
		return 0, errors.Wrap(err, "update member fine")
	}
	count, err := result.RowsAffected()
	return count, errors.Wrap(err, "update member fine")
}
