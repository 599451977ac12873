package server

import (
	"log/slog"
	"net/http"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/database"
)

// parseFine accepts 0 as an amount; only an absent or null amount is missing.
func parseFine(request RequestFine) (database.UpdateMemberFineParams, error) {
	if request.MemberID.IsEmpty() || !request.FineAmount.IsSet() {
		return database.UpdateMemberFineParams{}, validationError("All fields required")
	}
	memberID, err := request.MemberID.Int64()
	if err != nil {
		return database.UpdateMemberFineParams{}, validationError("member_id must be an integer")
	}
	amount, err := request.FineAmount.Float64()
	if err != nil {
		return database.UpdateMemberFineParams{}, validationError("fine_amount must be a number")
	}
	return database.UpdateMemberFineParams{ID: memberID, FineAmount: amount}, nil
}

// @Summary Sets a member's fine
// @Description Overwrites the fine amount of a member
// @Tags Fines
// @Accept json
// @Produce json
// @Param request body RequestFine true "Fine info"
// @Success 200 {object} MessageResponse "Fine updated successfully!"
// @Failure 400 {object} ErrorResponse "Missing field or invalid amount"
// @Failure 500 {object} ErrorResponse
// @Router /api/fines [post]
func (cfg *ApiConfig) HandlePostApiFines(w http.ResponseWriter, r *http.Request) {
	request := RequestFine{}
	if err := decodeRequest(r, &request); err != nil {
		respondWithRequestError(w, r, err)
		return
	}
	params, err := parseFine(request)
	if err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	updated, err := cfg.DB.UpdateMemberFine(r.Context(), params)
	if err != nil {
		respondWithRequestError(w, r, storeError("Failed to update fine", err))
		return
	}
	if updated == 0 {
		slog.DebugContext(r.Context(), "Fine update matched no member",
			"request_id", common.RequestID(r.Context()),
			"member_id", params.ID)
	}
	common.RespondWithMessage(w, http.StatusOK, "Fine updated successfully!")
}
