package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/middlewares"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// DeckLister defines the interface for listing visible decks.
type DeckLister interface {
	ListDecks(ctx context.Context, userID *int64, showAll bool) ([]models.DeckResponse, error)
}

// DeckManager defines the interface for changing a user's decks.
type DeckManager interface {
	CreateDeck(ctx context.Context, userID int64, name string) (models.DeckResponse, error)
	UpdateDeck(ctx context.Context, userID, deckID int64, name string) (models.DeckResponse, error)
	DeleteDeck(ctx context.Context, userID, deckID int64) error
}

// NewListDecksHandler returns an HTTP handler listing the decks visible to the caller.
// @Summary List decks
// @Description Guests see shared decks. Users see their own decks, plus shared ones when show_all is set.
// @Tags decks
// @Produce json
// @Param show_all query bool false "Include shared decks"
// @Success 200 {array} models.DeckResponse "Decks ordered by id"
// @Failure 422 {object} apperr.Response "Validation failed"
// @Router /api/decks [get]
func NewListDecksHandler(svc DeckLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showAll, ok := parseBool(r.URL.Query().Get("show_all"))
		if !ok {
			apperr.Write(w, ErrValidation.WithDetails(map[string]any{"show_all": "bool"}))
			return
		}

		user := middlewares.GetUserFromContext(r.Context())
		decks, err := svc.ListDecks(r.Context(), userID(user), showAll)
		if err != nil {
			apperr.Write(w, err)
			return
		}
		if decks == nil {
			decks = []models.DeckResponse{}
		}

		writeJSON(w, http.StatusOK, decks)
	}
}

// NewCreateDeckHandler returns an HTTP handler creating a deck.
// @Summary Create deck
// @Tags decks
// @Accept json
// @Produce json
// @Param deckRequest body models.DeckRequest true "Deck"
// @Success 200 {object} models.DeckResponse "Created deck"
// @Failure 401 {object} apperr.Response "Unauthorized"
// @Failure 409 {object} apperr.Response "Deck name already used"
// @Failure 422 {object} apperr.Response "Validation failed"
// @Security BearerAuth
// @Router /api/decks [post]
func NewCreateDeckHandler(svc DeckManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			apperr.Write(w, middlewares.ErrUnauthorized)
			return
		}

		var req models.DeckRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		deck, err := svc.CreateDeck(r.Context(), user.UserID, req.Name)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, deck)
	}
}

// NewUpdateDeckHandler returns an HTTP handler renaming a deck.
// @Summary Rename deck
// @Tags decks
// @Accept json
// @Produce json
// @Param deckID path int true "Deck ID"
// @Param deckRequest body models.DeckRequest true "Deck"
// @Success 200 {object} models.DeckResponse "Renamed deck"
// @Failure 404 {object} apperr.Response "Deck not found"
// @Failure 409 {object} apperr.Response "Deck name already used"
// @Failure 422 {object} apperr.Response "Validation failed"
// @Security BearerAuth
// @Router /api/decks/{deckID} [put]
func NewUpdateDeckHandler(svc DeckManager) http.HandlerFunc {
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

		var req models.DeckRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		deck, err := svc.UpdateDeck(r.Context(), user.UserID, deckID, req.Name)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, deck)
	}
}

// NewDeleteDeckHandler returns an HTTP handler deleting a deck with its cards and progress.
// @Summary Delete deck
// @Tags decks
// @Produce json
// @Param deckID path int true "Deck ID"
// @Success 200 {object} models.StatusResponse "Deleted"
// @Failure 404 {object} apperr.Response "Deck not found"
// @Security BearerAuth
// @Router /api/decks/{deckID} [delete]
func NewDeleteDeckHandler(svc DeckManager) http.HandlerFunc {
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

		if err := svc.DeleteDeck(r.Context(), user.UserID, deckID); err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.StatusResponse{Status: true})
	}
}
