package server

import (
	"log/slog"
	"net/http"

	"github.com/bakurvik/mylib/libadmin/common"
	"github.com/bakurvik/mylib/libadmin/internal/database"
	"github.com/pkg/errors"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindRange
	KindConflict
	KindNotFound
	KindStore
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRange:
		return "range"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	}
	return "unknown"
}

// RequestError is the failure of a single request. Message is what the client
// sees; Err, when set, is only logged.
type RequestError struct {
	Kind    ErrorKind
	Message string
	Details string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Status() int {
	switch e.Kind {
	case KindValidation, KindRange, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func validationError(msg string) *RequestError {
	return &RequestError{Kind: KindValidation, Message: msg}
}

func rangeError(msg string) *RequestError {
	return &RequestError{Kind: KindRange, Message: msg}
}

// storeError maps a failed insert onto the response. A missing book or member
// is the client's fault; anything else is reported as msg.
func storeError(msg string, err error) *RequestError {
	if database.IsForeignKeyViolation(err) {
		return &RequestError{Kind: KindValidation, Message: unknownReferenceMessage, Err: err}
	}
	return &RequestError{Kind: KindStore, Message: msg, Err: err}
}

func respondWithRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		reqErr = &RequestError{Kind: KindStore, Message: "Internal Server Error", Err: err}
	}

	level := slog.LevelDebug
	if reqErr.Kind == KindStore {
		level = slog.LevelError
	}
	slog.Log(r.Context(), level, "Request failed",
		"request_id", common.RequestID(r.Context()),
		"kind", reqErr.Kind.String(),
		"error", reqErr.Error())

	if reqErr.Details != "" {
		common.RespondWithErrorDetails(w, reqErr.Status(), reqErr.Message, reqErr.Details)
		return
	}
	common.RespondWithError(w, reqErr.Status(), reqErr.Message)
}
