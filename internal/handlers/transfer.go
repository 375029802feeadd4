package handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/middlewares"
	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/sbilibin2017/flashcards-api/internal/spreadsheet"
)

// multipartOverhead bounds the bytes a multipart envelope adds around the file.
const multipartOverhead = 64 << 10

// DeckTransferer defines the interface for spreadsheet export and import.
type DeckTransferer interface {
	ExportDeck(ctx context.Context, userID, deckID int64) ([]byte, string, error)
	ImportDeck(ctx context.Context, userID, deckID int64, filename string, r io.Reader) error
}

// NewExportDeckHandler returns an HTTP handler streaming a deck as an xlsx workbook.
// @Summary Export deck
// @Tags cards
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param deckID path int true "Deck ID"
// @Success 200 {file} file "Workbook with entry and value columns"
// @Failure 404 {object} apperr.Response "Deck not found"
// @Security BearerAuth
// @Router /api/decks/{deckID}/export [get]
func NewExportDeckHandler(svc DeckTransferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			apperr.Write(w, middlewares.ErrUnauthorized)
			return
		}

		deckID, err := deckIDParam(r)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		data, filename, err := svc.ExportDeck(r.Context(), user.UserID, deckID)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		w.Header().Set("Content-Type", spreadsheet.ContentType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// NewImportDeckHandler returns an HTTP handler replacing a deck's cards with
// those of an uploaded workbook of at most maxBytes.
// @Summary Import deck
// @Tags cards
// @Accept multipart/form-data
// @Produce json
// @Param deckID path int true "Deck ID"
// @Param file formData file true "xlsx workbook with entry and value columns"
// @Success 200 {object} models.StatusResponse "Imported"
// @Failure 400 {object} apperr.Response "Not a workbook, missing columns or unreadable"
// @Failure 404 {object} apperr.Response "Deck not found"
// @Failure 413 {object} apperr.Response "File too large"
// @Failure 422 {object} apperr.Response "File missing"
// @Security BearerAuth
// @Router /api/decks/{deckID}/import [post]
func NewImportDeckHandler(svc DeckTransferer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			apperr.Write(w, middlewares.ErrUnauthorized)
			return
		}

		deckID, err := deckIDParam(r)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			apperr.Write(w, uploadError(err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			apperr.Write(w, uploadError(err))
			return
		}
		defer file.Close()

		if header.Size > maxBytes {
			apperr.Write(w, ErrFileTooLarge)
			return
		}

		if err := svc.ImportDeck(r.Context(), user.UserID, deckID, header.Filename, file); err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.StatusResponse{Status: true})
	}
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return ErrFileTooLarge
	case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingFile):
		return ErrValidation.WithDetails(map[string]any{"file": "required"})
	}
	return ErrInvalidRequest
}
