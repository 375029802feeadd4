package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (access, refresh string, err error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return an access and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "Token pair returned"
// @Failure 400 {object} apperr.Response "Invalid username or password"
// @Failure 422 {object} apperr.Response "Validation failed"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			apperr.Write(w, err)
			return
		}

		access, refresh, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{Access: access, Refresh: refresh})
	}
}
