package server

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/pkg/errors"
)

var (
	errNotInteger = errors.New("not an integer")
	errNotNumber  = errors.New("not a number")
)

// Field is a JSON scalar the browser front-end sends either as a number or
// as a string, depending on the form.
type Field struct {
	raw     string
	set     bool
	numeric bool
}

func (f *Field) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	switch {
	case text == "null":
		*f = Field{}
	case strings.HasPrefix(text, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field{raw: s, set: true}
	default:
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return fmt.Errorf("expected a number or a string, got %v", text)
		}
		*f = Field{raw: text, set: true, numeric: true}
	}
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	switch {
	case !f.set:
		return []byte("null"), nil
	case f.numeric:
		return []byte(f.raw), nil
	}
	return json.Marshal(f.raw)
}

// IsSet reports whether the field was sent with a non-null value.
func (f Field) IsSet() bool {
	return f.set
}

// IsMissing reports whether the field is absent, null or an empty string.
func (f Field) IsMissing() bool {
	return !f.set || strings.TrimSpace(f.raw) == ""
}

// IsEmpty is IsMissing that also counts the number 0 as missing.
func (f Field) IsEmpty() bool {
	if f.IsMissing() {
		return true
	}
	if f.numeric {
		v, err := strconv.ParseFloat(f.raw, 64)
		return err == nil && v == 0
	}
	return false
}

func (f Field) String() string {
	return f.raw
}

func (f Field) Int64() (int64, error) {
	text := strings.TrimSpace(f.raw)
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > 1<<53 {
		return 0, errNotInteger
	}
	return int64(v), nil
}

func (f Field) Float64() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotNumber
	}
	return v, nil
}

type RequestBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

type RequestMember struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type RequestIssue struct {
	BookID    Field  `json:"book_id"`
	MemberID  Field  `json:"member_id"`
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`
}

type RequestReservation struct {
	BookID      Field  `json:"book_id"`
	MemberID    Field  `json:"member_id"`
	ReserveDate string `json:"reserve_date"`
}

type RequestStudyRoom struct {
	RoomID      Field  `json:"room_id"`
	MemberID    Field  `json:"member_id"`
	BookingDate string `json:"booking_date"`
	Hours       Field  `json:"hours"`
}

type RequestFine struct {
	MemberID   Field `json:"member_id"`
	FineAmount Field `json:"fine_amount"`
}

type ResponseBook struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

type ResponseMember struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Contact    string  `json:"contact"`
	FineAmount float64 `json:"fine_amount"`
}

type ResponseIssuedBook struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"book_id"`
	MemberID  int64  `json:"member_id"`
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`
}

type ResponseReservedBook struct {
	ID          int64  `json:"id"`
	BookID      int64  `json:"book_id"`
	MemberID    int64  `json:"member_id"`
	ReserveDate string `json:"reserve_date"`
}

type ResponseStudyRoomBooking struct {
	ID            int64   `json:"id"`
	RoomID        int64   `json:"room_id"`
	MemberID      int64   `json:"member_id"`
	BookingDate   string  `json:"booking_date"`
	DurationHours float64 `json:"duration_hours"`
}

type ErrorResponse = common.ErrorResponse

type MessageResponse = common.MessageResponse
