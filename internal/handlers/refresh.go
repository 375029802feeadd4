package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// Refresher defines the interface that the token refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// NewRefreshHandler returns an HTTP handler that exchanges a refresh token
// for a new access token.
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body models.RefreshRequest true "Refresh Request"
// @Success 200 {object} models.RefreshResponse "New access token"
// @Failure 400 {object} apperr.Response "Refresh token missing"
// @Failure 401 {object} apperr.Response "Refresh token invalid or expired"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RefreshRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		access, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.RefreshResponse{Access: access})
	}
}
