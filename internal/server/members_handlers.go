package server

import (
	"net/http"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/database"
)

func parseMember(request RequestMember) (database.CreateMemberParams, error) {
	if request.Name == "" || request.Email == "" || request.Contact == "" {
		return database.CreateMemberParams{}, validationError("All fields required")
	}
	return database.CreateMemberParams{Name: request.Name, Email: request.Email, Contact: request.Contact}, nil
}

// @Summary Registers a member
// @Description Stores a new member with no fine
// @Tags Members
// @Accept json
// @Produce json
// @Param request body RequestMember true "Member's info"
// @Success 200 {object} MessageResponse "Member added successfully!"
// @Failure 400 {object} ErrorResponse "Missing field or invalid request body"
// @Failure 500 {object} ErrorResponse
// @Router /api/members [post]
func (cfg *ApiConfig) HandlePostApiMembers(w http.ResponseWriter, r *http.Request) {
	request := RequestMember{}
	if err := decodeRequest(r, &request); err != nil {
		respondWithRequestError(w, r, err)
		return
	}
	params, err := parseMember(request)
	if err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	if err := cfg.DB.CreateMember(r.Context(), params); err != nil {
		respondWithRequestError(w, r, storeError("Failed to add member", err))
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Member added successfully!")
}

// @Summary Lists members
// @Tags Members
// @Produce json
// @Success 200 {array} ResponseMember
// @Failure 500 {object} ErrorResponse
// @Router /api/members [get]
func (cfg *ApiConfig) HandleGetApiMembers(w http.ResponseWriter, r *http.Request) {
	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	members, err := cfg.DB.ListMembers(r.Context())
	if err != nil {
		respondWithRequestError(w, r, storeError("Failed to fetch members", err))
		return
	}

	response := make([]ResponseMember, 0, len(members))
	for _, member := range members {
		response = append(response, ResponseMember{
			ID:         member.ID,
			Name:       member.Name,
			Email:      member.Email,
			Contact:    member.Contact,
			FineAmount: member.FineAmount,
		})
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}
