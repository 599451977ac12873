package server

import (
	"net/http"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/database"
	"github.com/pkg/errors"
)

const issueFieldsRequired = "All fields (book_id, member_id, issue_date, due_date) are required"

// parseIssue only checks that the fields are there. Issue and due dates are
// stored as sent, unlike reservation and booking dates.
func parseIssue(request RequestIssue) (database.CreateIssuedBookParams, error) {
	if request.BookID.IsEmpty() || request.MemberID.IsEmpty() || request.IssueDate == "" || request.DueDate == "" {
		return database.CreateIssuedBookParams{}, validationError(issueFieldsRequired)
	}
	bookID, err := request.BookID.Int64()
	if err != nil {
		return database.CreateIssuedBookParams{}, validationError("book_id must be an integer")
	}
	memberID, err := request.MemberID.Int64()
	if err != nil {
		return database.CreateIssuedBookParams{}, validationError("member_id must be an integer")
	}
	return database.CreateIssuedBookParams{
		BookID:    bookID,
		MemberID:  memberID,
		IssueDate: request.IssueDate,
		DueDate:   request.DueDate,
	}, nil
}

// @Summary Issues a book
// @Description Records that a book was lent to a member. Dates are not validated.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body RequestIssue true "Loan info"
// @Success 200 {object} MessageResponse "Book issued successfully!"
// @Failure 400 {object} ErrorResponse "Missing field, unknown book or member"
// @Failure 500 {object} ErrorResponse "Failed to issue book, with details"
// @Router /api/issue [post]
func (cfg *ApiConfig) HandlePostApiIssue(w http.ResponseWriter, r *http.Request) {
	request := RequestIssue{}
	if err := decodeRequest(r, &request); err != nil {
		respondWithRequestError(w, r, err)
		return
	}
	params, err := parseIssue(request)
	if err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	if err := cfg.DB.CreateIssuedBook(r.Context(), params); err != nil {
		reqErr := storeError("Failed to issue book", err)
		if reqErr.Kind == KindStore {
			reqErr.Details = errors.Cause(err).Error()
		}
		respondWithRequestError(w, r, reqErr)
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Book issued successfully!")
}

// @Summary Lists issued books
// @Tags Loans
// @Produce json
// @Success 200 {array} ResponseIssuedBook
// @Failure 500 {object} ErrorResponse
// @Router /api/issue [get]
func (cfg *ApiConfig) HandleGetApiIssue(w http.ResponseWriter, r *http.Request) {
	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	loans, err := cfg.DB.ListIssuedBooks(r.Context())
	if err != nil {
		respondWithRequestError(w, r, storeError("Failed to fetch issued books", err))
		return
	}

	response := make([]ResponseIssuedBook, 0, len(loans))
	for _, loan := range loans {
		response = append(response, ResponseIssuedBook{
			ID:        loan.ID,
			BookID:    loan.BookID,
			MemberID:  loan.MemberID,
			IssueDate: loan.IssueDate,
			DueDate:   loan.DueDate,
		})
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}
