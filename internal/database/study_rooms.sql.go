package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const findStudyRoomBookings = `SELECT id, room_id, member_id, booking_date, duration_hours
FROM study_rooms_booking
WHERE room_id = ? AND booking_date = ?`

type FindStudyRoomBookingsParams struct {
	RoomID      int64
	BookingDate Date
}

func (q *Queries) FindStudyRoomBookings(ctx context.Context, arg FindStudyRoomBookingsParams) ([]StudyRoomBooking, error) {
	bookings := []StudyRoomBooking{}
	err := sqlx.SelectContext(ctx, q.db, &bookings, q.rebind(findStudyRoomBookings), arg.RoomID, arg.BookingDate)
	if err != nil {
		return nil, errors.Wrap(err, "find study room bookings")
	}
	return bookings, nil
}

const createStudyRoomBooking = `INSERT INTO study_rooms_booking (room_id, member_id, booking_date, duration_hours) VALUES (?, ?, ?, ?)`

type CreateStudyRoomBookingParams struct {
	RoomID        int64
	MemberID      int64
	BookingDate   Date
	DurationHours float64
}

// CreateStudyRoomBooking fails with a unique violation (see IsUniqueViolation)
// when the room already has a booking for that date.
func (q *Queries) CreateStudyRoomBooking(ctx context.Context, arg CreateStudyRoomBookingParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(createStudyRoomBooking), arg.RoomID, arg.MemberID, arg.BookingDate, arg.DurationHours)
	return errors.Wrap(err, "create study room booking")
}

const listStudyRoomBookings = `SELECT id, room_id, member_id, booking_date, duration_hours FROM study_rooms_booking ORDER BY id`

func (q *Queries) ListStudyRoomBookings(ctx context.Context) ([]StudyRoomBooking, error) {
	bookings := []StudyRoomBooking{}
	if err := sqlx.SelectContext(ctx, q.db, &bookings, listStudyRoomBookings); err != nil {
		return nil, errors.Wrap(err, "list study room bookings")
	}
	return bookings, nil
}
