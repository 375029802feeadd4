package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/middlewares"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// Studier defines the interface of a study session.
type Studier interface {
	NextCard(ctx context.Context, userID *int64, deckID int64, mode models.StudyMode, exclude []int64) (models.NextCard, error)
	ToggleLearned(ctx context.Context, userID, deckID, cardID int64) (models.ToggleResult, error)
	ResetProgress(ctx context.Context, userID, deckID int64) error
}

// NewNextCardHandler returns an HTTP handler serving the next study card.
// @Summary Next study card
// @Description Picks a card matching the mode that is not excluded. Users get a random card and their progress is recorded; guests get the lowest id.
// @Tags study
// @Accept json
// @Produce json
// @Param deckID path int true "Deck ID"
// @Param nextCardRequest body models.NextCardRequest true "Mode and excluded card ids"
// @Success 200 {object} models.NextCard "Card or null with stats"
// @Failure 404 {object} apperr.Response "Deck not found"
// @Failure 422 {object} apperr.Response "Validation failed"
// @Router /api/decks/{deckID}/next-card [post]
func NewNextCardHandler(svc Studier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID, err := deckIDParam(r)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		var req models.NextCardRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		user := middlewares.GetUserFromContext(r.Context())
		next, err := svc.NextCard(r.Context(), userID(user), deckID, req.Mode, req.Exclude)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, next)
	}
}

// NewToggleLearnedHandler returns an HTTP handler flipping a served card's learned flag.
// @Summary Toggle learned
// @Tags study
// @Accept json
// @Produce json
// @Param deckID path int true "Deck ID"
// @Param toggleLearnedRequest body models.ToggleLearnedRequest true "Card"
// @Success 200 {object} models.ToggleResult "New flag with stats"
// @Failure 404 {object} apperr.Response "Deck, card or progress not found"
// @Failure 422 {object} apperr.Response "Validation failed"
// @Security BearerAuth
// @Router /api/decks/{deckID}/toggle_learned [patch]
func NewToggleLearnedHandler(svc Studier) http.HandlerFunc {
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

		var req models.ToggleLearnedRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		result, err := svc.ToggleLearned(r.Context(), user.UserID, deckID, req.CardID)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewResetProgressHandler returns an HTTP handler clearing the caller's progress in a deck.
// @Summary Reset progress
// @Tags study
// @Produce json
// @Param deckID path int true "Deck ID"
// @Success 200 {object} models.StatusResponse "Progress cleared"
// @Failure 404 {object} apperr.Response "Deck not found"
// @Security BearerAuth
// @Router /api/decks/{deckID}/reset [delete]
func NewResetProgressHandler(svc Studier) http.HandlerFunc {
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

		if err := svc.ResetProgress(r.Context(), user.UserID, deckID); err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.StatusResponse{Status: true})
	}
}
