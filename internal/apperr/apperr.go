// Package apperr defines the application error returned to API clients.
//
// An Error carries the HTTP status, a stable localization key the client
// translates, and optional structured details. Anything else that reaches
// Write is treated as an internal failure.
package apperr

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/logger"
)

// KeyInternal is reported for errors that are not application errors.
const KeyInternal = "error.internal"

// Error is a client-facing application error.
type Error struct {
	Status  int
	Key     string
	Details map[string]any
}

// New creates an Error with empty details.
func New(status int, key string) *Error {
	return &Error{Status: status, Key: key}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Key
}

// Is matches another *Error with the same status and key, so sentinel values
// keep working after WithDetails.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Key == t.Key
}

// WithDetails returns a copy of e with details attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	return &Error{Status: e.Status, Key: e.Key, Details: maps.Clone(details)}
}

// Response is the JSON body written for every non-2xx response.
// swagger:model ErrorResponse
type Response struct {
	// Localization key
	// example: error.deck_not_found
	LocalizationKey string `json:"localization_key"`

	// Structured details
	Details map[string]any `json:"details"`
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Write renders err as a JSON error response.
func Write(w http.ResponseWriter, err error) {
	appErr, ok := From(err)
	if !ok {
		logger.Log.Errorw("internal server error", "error", err)
		appErr = New(http.StatusInternalServerError, KeyInternal)
	}

	details := appErr.Details
	if details == nil {
		details = map[string]any{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	json.NewEncoder(w).Encode(Response{
		LocalizationKey: appErr.Key,
		Details:         details,
	})
}
