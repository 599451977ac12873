package database

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// Date is a calendar day. It is written to the store as YYYY-MM-DD and
// scanned back from either a time value or its text form.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d = Date{}
		return nil
	}
	return errors.Errorf("cannot scan %T into Date", src)
}

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return errors.Wrap(err, "parse stored date")
	}
	*d = Date{Time: t}
	return nil
}

type Book struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	Author string `db:"author"`
	ISBN   string `db:"isbn"`
}

type Member struct {
	ID         int64   `db:"id"`
	Name       string  `db:"name"`
	Email      string  `db:"email"`
	Contact    string  `db:"contact"`
	FineAmount float64 `db:"fine_amount"`
}

// IssuedBook keeps issue and due dates exactly as the client sent them.
type IssuedBook struct {
	ID        int64  `db:"id"`
	BookID    int64  `db:"book_id"`
	MemberID  int64  `db:"member_id"`
	IssueDate string `db:"issue_date"`
	DueDate   string `db:"due_date"`
}

type ReservedBook struct {
	ID          int64 `db:"id"`
	BookID      int64 `db:"book_id"`
	MemberID    int64 `db:"member_id"`
	ReserveDate Date  `db:"reserve_date"`
}

type StudyRoomBooking struct {
	ID            int64   `db:"id"`
	RoomID        int64   `db:"room_id"`
	MemberID      int64   `db:"member_id"`
	BookingDate   Date    `db:"booking_date"`
	DurationHours float64 `db:"duration_hours"`
}
