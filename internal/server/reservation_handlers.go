package server

import (
	"net/http"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/database"
)

const reserveFieldsRequired = "All fields and valid reserve date required"

func parseReservation(request RequestReservation) (database.CreateReservationParams, error) {
	if request.BookID.IsEmpty() || request.MemberID.IsEmpty() || request.ReserveDate == "" {
		return database.CreateReservationParams{}, validationError(reserveFieldsRequired)
	}
	reserveDate, err := common.ParseDate(request.ReserveDate)
	if err != nil {
		return database.CreateReservationParams{}, validationError(reserveFieldsRequired)
	}
	bookID, err := request.BookID.Int64()
	if err != nil {
		return database.CreateReservationParams{}, validationError("book_id must be an integer")
	}
	memberID, err := request.MemberID.Int64()
	if err != nil {
		return database.CreateReservationParams{}, validationError("member_id must be an integer")
	}
	return database.CreateReservationParams{
		BookID:      bookID,
		MemberID:    memberID,
		ReserveDate: database.NewDate(reserveDate),
	}, nil
}

// @Summary Reserves a book
// @Description Records a member's hold on a book for a date
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body RequestReservation true "Reservation info"
// @Success 200 {object} MessageResponse "Book reserved successfully!"
// @Failure 400 {object} ErrorResponse "Missing field, invalid date, unknown book or member"
// @Failure 500 {object} ErrorResponse
// @Router /api/reserve [post]
func (cfg *ApiConfig) HandlePostApiReserve(w http.ResponseWriter, r *http.Request) {
	request := RequestReservation{}
	if err := decodeRequest(r, &request); err != nil {
		respondWithRequestError(w, r, err)
		return
	}
	params, err := parseReservation(request)
	if err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	if err := cfg.DB.CreateReservation(r.Context(), params); err != nil {
		respondWithRequestError(w, r, storeError("Failed to reserve book", err))
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Book reserved successfully!")
}

// @Summary Lists reserved books
// @Tags Reservations
// @Produce json
// @Success 200 {array} ResponseReservedBook
// @Failure 500 {object} ErrorResponse
// @Router /api/reserved-books [get]
func (cfg *ApiConfig) HandleGetApiReservedBooks(w http.ResponseWriter, r *http.Request) {
	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	reservations, err := cfg.DB.ListReservations(r.Context())
	if err != nil {
		respondWithRequestError(w, r, storeError("Failed to fetch reserved books", err))
		return
	}

	response := make([]ResponseReservedBook, 0, len(reservations))
	for _, reservation := range reservations {
		response = append(response, ResponseReservedBook{
			ID:          reservation.ID,
			BookID:      reservation.BookID,
			MemberID:    reservation.MemberID,
			ReserveDate: reservation.ReserveDate.String(),
		})
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}
