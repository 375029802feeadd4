package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/middlewares"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, user *models.UserDB, req models.ProfileUpdateRequest) (models.ProfileResponse, error)
}

// NewGetProfileHandler returns an HTTP handler that reports the current user's profile.
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.ProfileResponse "Profile"
// @Failure 401 {object} apperr.Response "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func NewGetProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			apperr.Write(w, middlewares.ErrUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, user.Profile())
	}
}

// NewUpdateProfileHandler returns an HTTP handler that updates the current
// user's color and language.
// @Summary Update profile preferences
// @Tags auth
// @Accept json
// @Produce json
// @Param profileUpdateRequest body models.ProfileUpdateRequest true "Preferences"
// @Success 200 {object} models.ProfileResponse "Updated profile"
// @Failure 401 {object} apperr.Response "Unauthorized"
// @Failure 422 {object} apperr.Response "Validation failed"
// @Security BearerAuth
// @Router /auth/me [patch]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			apperr.Write(w, middlewares.ErrUnauthorized)
			return
		}

		var req models.ProfileUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		profile, err := svc.UpdateProfile(r.Context(), user, req)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
