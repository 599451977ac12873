package server

import (
	"net/http"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/database"
)

func parseBook(request RequestBook) (database.CreateBookParams, error) {
	if request.Title == "" || request.Author == "" || request.ISBN == "" {
		return database.CreateBookParams{}, validationError("All fields required.")
	}
	return database.CreateBookParams{Title: request.Title, Author: request.Author, ISBN: request.ISBN}, nil
}

// @Summary Adds a book
// @Description Stores a new book in the catalogue
// @Tags Books
// @Accept json
// @Produce json
// @Param request body RequestBook true "Book's info"
// @Success 200 {object} MessageResponse "Book added successfully!"
// @Failure 400 {object} ErrorResponse "Missing field or invalid request body"
// @Failure 500 {object} ErrorResponse
// @Router /api/books [post]
func (cfg *ApiConfig) HandlePostApiBooks(w http.ResponseWriter, r *http.Request) {
	request := RequestBook{}
	if err := decodeRequest(r, &request); err != nil {
		respondWithRequestError(w, r, err)
		return
	}
	params, err := parseBook(request)
	if err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	if err := cfg.DB.CreateBook(r.Context(), params); err != nil {
		respondWithRequestError(w, r, storeError("Failed to add book", err))
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Book added successfully!")
}

// @Summary Lists books
// @Description Returns every book ordered by id
// @Tags Books
// @Produce json
// @Success 200 {array} ResponseBook
// @Failure 500 {object} ErrorResponse
// @Router /api/books [get]
func (cfg *ApiConfig) HandleGetApiBooks(w http.ResponseWriter, r *http.Request) {
	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	books, err := cfg.DB.ListBooks(r.Context())
	if err != nil {
		respondWithRequestError(w, r, storeError("Failed to fetch books", err))
		return
	}

	response := make([]ResponseBook, 0, len(books))
	for _, book := range books {
		response = append(response, ResponseBook{ID: book.ID, Title: book.Title, Author: book.Author, ISBN: book.ISBN})
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}
