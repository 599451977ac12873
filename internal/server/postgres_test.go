package server

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/config"
	"github.com/bakurvik/mylib/libadmin/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const truncateTables = `TRUNCATE study_rooms_booking, reserved_books, issued_book, members, books RESTART IDENTITY CASCADE`

// Runs against a real Postgres when TEST_DB_URL is set, with both drivers.
func TestPostgres_RoundTrip(t *testing.T) {
	dbURL := os.Getenv("TEST_DB_URL")
	if dbURL == "" {
		t.Skip("TEST_DB_URL is not set")
	}

	for _, driver := range []string{config.DriverPostgres, config.DriverPGX} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			db, err := common.SetupDB(ctx, config.DBConfig{Driver: driver, URL: dbURL, MaxConns: 4})
			require.NoError(t, err)
			t.Cleanup(func() { common.CloseDB(db) })
			require.NoError(t, database.ApplySchema(ctx, db))
			_, err = db.ExecContext(ctx, truncateTables)
			require.NoError(t, err)

			s := setupTestServer(t, db, "")
			s.addBook(t)
			s.addMembers(t, 1)

			code, body := s.post(t, ApiStudyRoomsPath, `{"room_id":1,"member_id":1,"booking_date":"2025-07-01","hours":2}`)
			require.Equal(t, http.StatusOK, code, body)
			code, body = s.post(t, ApiStudyRoomsPath, `{"room_id":1,"member_id":1,"booking_date":"2025-07-01","hours":3}`)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.JSONEq(t, `{"error":"Room already booked for this date"}`, body)

			code, body = s.post(t, ApiReservePath, `{"book_id":1,"member_id":1,"reserve_date":"2025-06-01"}`)
			require.Equal(t, http.StatusOK, code, body)
			code, body = s.post(t, ApiIssuePath, `{"book_id":2,"member_id":1,"issue_date":"a","due_date":"b"}`)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.JSONEq(t, `{"error":"Unknown book or member"}`, body)

			code, _ = s.post(t, ApiFinesPath, `{"member_id":1,"fine_amount":"4.50"}`)
			require.Equal(t, http.StatusOK, code)

			members := []ResponseMember{}
			require.Equal(t, http.StatusOK, s.get(t, ApiMembersPath, &members))
			require.Len(t, members, 1)
			assert.Equal(t, 4.5, members[0].FineAmount)

			reservations := []ResponseReservedBook{}
			require.Equal(t, http.StatusOK, s.get(t, ApiReservedBooksPath, &reservations))
			require.Len(t, reservations, 1)
			assert.Equal(t, "2025-06-01", reservations[0].ReserveDate)

			bookings := []ResponseStudyRoomBooking{}
			require.Equal(t, http.StatusOK, s.get(t, ApiStudyRoomsPath, &bookings))
			require.Len(t, bookings, 1)
			assert.Equal(t, "2025-07-01", bookings[0].BookingDate)
		})
	}
}
