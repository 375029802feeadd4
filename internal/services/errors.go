package services

import (
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
)

// Error variables
var (
	ErrUsernameExists      = apperr.New(http.StatusConflict, "error.user_username_exist")
	ErrEmailExists         = apperr.New(http.StatusConflict, "error.user_email_exist")
	ErrInvalidCredentials  = apperr.New(http.StatusBadRequest, "error.incorrect_username_or_password")
	ErrRefreshRequired     = apperr.New(http.StatusBadRequest, "error.refresh_required")
	ErrInvalidRefreshToken = apperr.New(http.StatusUnauthorized, "error.invalid_refresh_token")
	ErrInvalidPreferences  = apperr.New(http.StatusUnprocessableEntity, "error.validation")

	ErrDeckNameExists   = apperr.New(http.StatusConflict, "error.deck_name_exist")
	ErrDeckNotFound     = apperr.New(http.StatusNotFound, "error.deck_not_found")
	ErrCardNotFound     = apperr.New(http.StatusNotFound, "error.card_not_found")
	ErrProgressNotFound = apperr.New(http.StatusNotFound, "error.progress_not_found")

	ErrOnlyExcel    = apperr.New(http.StatusBadRequest, "only_excel")
	ErrExcelColumns = apperr.New(http.StatusBadRequest, "error.excel_columns")
	ErrExcelError   = apperr.New(http.StatusBadRequest, "error.excel_error")
)
