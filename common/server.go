package common

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, ErrorResponse{Error: msg})
}

// RespondWithErrorDetails adds the underlying cause next to the public message.
func RespondWithErrorDetails(w http.ResponseWriter, code int, msg string, details string) {
	RespondWithJSON(w, code, ErrorResponse{Error: msg, Details: details})
}

func RespondWithMessage(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, MessageResponse{Message: msg})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	responseData, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(responseData)
}

func CloseResponseBody(response *http.Response) {
	if response != nil && response.Body != nil {
		response.Body.Close()
	}
}
