package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/sbilibin2017/flashcards-api/internal/services"
)

// Error variables
var (
	ErrInvalidRequest = apperr.New(http.StatusBadRequest, "error.invalid_request")
	ErrValidation     = apperr.New(http.StatusUnprocessableEntity, "error.validation")
	ErrFileTooLarge   = apperr.New(http.StatusRequestEntityTooLarge, "error.file_too_large")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads the request body into dst and validates it.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidRequest
	}
	return validateStruct(dst)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return ErrValidation.WithDetails(details)
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// deckIDParam reads the {deckID} path parameter. Ids are stored as INTEGER,
// so a malformed or out of range id is reported as a missing deck.
func deckIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "deckID"), 10, 32)
	if err != nil || id <= 0 {
		return 0, services.ErrDeckNotFound
	}
	return id, nil
}

// userID returns the id of an authenticated user or nil for a guest.
func userID(user *models.UserDB) *int64 {
	if user == nil {
		return nil
	}
	id := user.UserID
	return &id
}

// parseBool accepts the boolean spellings query strings commonly use.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "", "0", "false", "f", "no", "n", "off":
		return false, true
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	}
	return false, false
}
