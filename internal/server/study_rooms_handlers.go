package server

import (
	"fmt"
	"net/http"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/database"
)

const (
	minBookingHours = 1
	maxBookingHours = 8

	bookingFieldsRequired = "All fields and valid booking date required"
	bookingHoursRange     = "Duration must be 1-8 hours"
	roomAlreadyBooked     = "Room already booked for this date"
)

// parseStudyRoomBooking runs every check that does not need the store.
func parseStudyRoomBooking(request RequestStudyRoom) (database.CreateStudyRoomBookingParams, error) {
	if request.RoomID.IsEmpty() || request.MemberID.IsEmpty() || request.BookingDate == "" || request.Hours.IsMissing() {
		return database.CreateStudyRoomBookingParams{}, validationError(bookingFieldsRequired)
	}
	bookingDate, err := common.ParseDate(request.BookingDate)
	if err != nil {
		return database.CreateStudyRoomBookingParams{}, validationError(bookingFieldsRequired)
	}
	roomID, err := request.RoomID.Int64()
	if err != nil {
		return database.CreateStudyRoomBookingParams{}, validationError("room_id must be an integer")
	}
	memberID, err := request.MemberID.Int64()
	if err != nil {
		return database.CreateStudyRoomBookingParams{}, validationError("member_id must be an integer")
	}
	hours, err := request.Hours.Float64()
	if err != nil || hours < minBookingHours || hours > maxBookingHours {
		return database.CreateStudyRoomBookingParams{}, rangeError(bookingHoursRange)
	}
	return database.CreateStudyRoomBookingParams{
		RoomID:        roomID,
		MemberID:      memberID,
		BookingDate:   database.NewDate(bookingDate),
		DurationHours: hours,
	}, nil
}

func (cfg *ApiConfig) roomConflict() *RequestError {
	if cfg.Metrics != nil {
		cfg.Metrics.StudyRoomConflict()
	}
	return &RequestError{Kind: KindConflict, Message: roomAlreadyBooked}
}

// @Summary Books a study room
// @Description Books a room for one day. A room can be booked once per date.
// @Tags Study rooms
// @Accept json
// @Produce json
// @Param request body RequestStudyRoom true "Booking info"
// @Success 200 {object} MessageResponse "Room booked for N hours!"
// @Failure 400 {object} ErrorResponse "Missing field, invalid date, hours out of range or room taken"
// @Failure 500 {object} ErrorResponse
// @Router /api/study-rooms [post]
func (cfg *ApiConfig) HandlePostApiStudyRooms(w http.ResponseWriter, r *http.Request) {
	request := RequestStudyRoom{}
	if err := decodeRequest(r, &request); err != nil {
		respondWithRequestError(w, r, err)
		return
	}
	params, err := parseStudyRoomBooking(request)
	if err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	existing, err := cfg.DB.FindStudyRoomBookings(r.Context(), database.FindStudyRoomBookingsParams{
		RoomID:      params.RoomID,
		BookingDate: params.BookingDate,
	})
	if err != nil {
		respondWithRequestError(w, r, storeError("Database error", err))
		return
	}
	if len(existing) > 0 {
		respondWithRequestError(w, r, cfg.roomConflict())
		return
	}

	// A concurrent request may have taken the room since the lookup.
	if err := cfg.DB.CreateStudyRoomBooking(r.Context(), params); err != nil {
		if database.IsUniqueViolation(err) {
			respondWithRequestError(w, r, cfg.roomConflict())
			return
		}
		respondWithRequestError(w, r, storeError("Failed to book room", err))
		return
	}
	common.RespondWithMessage(w, http.StatusOK, fmt.Sprintf("Room booked for %v hours!", params.DurationHours))
}

// @Summary Lists study room bookings
// @Tags Study rooms
// @Produce json
// @Success 200 {array} ResponseStudyRoomBooking
// @Failure 500 {object} ErrorResponse
// @Router /api/study-rooms [get]
func (cfg *ApiConfig) HandleGetApiStudyRooms(w http.ResponseWriter, r *http.Request) {
	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	bookings, err := cfg.DB.ListStudyRoomBookings(r.Context())
	if err != nil {
		respondWithRequestError(w, r, storeError("Failed to fetch study room bookings", err))
		return
	}

	response := make([]ResponseStudyRoomBooking, 0, len(bookings))
	for _, booking := range bookings {
		response = append(response, ResponseStudyRoomBooking{
			ID:            booking.ID,
			RoomID:        booking.RoomID,
			MemberID:      booking.MemberID,
			BookingDate:   booking.BookingDate.String(),
			DurationHours: booking.DurationHours,
		})
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}
