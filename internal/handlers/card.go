package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/middlewares"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// CardManager defines the interface for reading and replacing a deck's cards.
type CardManager interface {
	GetCards(ctx context.Context, userID, deckID int64) ([]models.CardInput, error)
	ReplaceCards(ctx context.Context, userID, deckID int64, cards []models.CardInput) ([]models.CardInput, error)
}

// NewGetCardsHandler returns an HTTP handler listing a deck's cards.
// @Summary List cards
// @Tags cards
// @Produce json
// @Param deckID path int true "Deck ID"
// @Success 200 {object} models.CardsResponse "Cards ordered by id"
// @Failure 404 {object} apperr.Response "Deck not found"
// @Security BearerAuth
// @Router /api/decks/{deckID}/cards [get]
func NewGetCardsHandler(svc CardManager) http.HandlerFunc {
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

		cards, err := svc.GetCards(r.Context(), user.UserID, deckID)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cardsResponse(cards))
	}
}

// NewReplaceCardsHandler returns an HTTP handler that makes the deck hold
// exactly the given cards, keeping ids of entries that survive.
// @Summary Replace cards
// @Tags cards
// @Accept json
// @Produce json
// @Param deckID path int true "Deck ID"
// @Param cardsRequest body models.CardsRequest true "Cards"
// @Success 200 {object} models.CardsResponse "Stored cards"
// @Failure 404 {object} apperr.Response "Deck not found"
// @Failure 422 {object} apperr.Response "Validation failed"
// @Security BearerAuth
// @Router /api/decks/{deckID}/cards [put]
func NewReplaceCardsHandler(svc CardManager) http.HandlerFunc {
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

		var req models.CardsRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		cards, err := svc.ReplaceCards(r.Context(), user.UserID, deckID, req.Cards)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cardsResponse(cards))
	}
}

func cardsResponse(cards []models.CardInput) models.CardsResponse {
	if cards == nil {
		cards = []models.CardInput{}
	}
	return models.CardsResponse{Cards: cards}
}
