package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/jwt"
	"github.com/sbilibin2017/flashcards-api/internal/logger"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// ErrUnauthorized is returned when a protected route is called without a valid token.
var ErrUnauthorized = apperr.New(http.StatusUnauthorized, "error.unauthorized")

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the user a token was issued to.
type UserGetter interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that rejects requests without a valid
// access token for an existing user.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := authenticate(ctx, r, tokener, users)
			if err != nil {
				writeAuthError(w, err)
				return
			}
			if user == nil {
				writeAuthError(w, ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(setUserToContext(ctx, user)))
		})
	}
}

// OptionalAuthMiddleware returns a middleware that attaches the user when a
// valid access token is present and lets the request through as a guest
// otherwise.
func OptionalAuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := authenticate(ctx, r, tokener, users)
			if err != nil {
				apperr.Write(w, err)
				return
			}
			if user != nil {
				ctx = setUserToContext(ctx, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate returns the token's user, or nil when the request carries no
// usable token. Only lookup failures are returned as errors.
func authenticate(ctx context.Context, r *http.Request, tokener Tokener, users UserGetter) (*models.UserDB, error) {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Debugw("no bearer token", "err", err)
		return nil, nil
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Infow("authorization failed", "err", err)
		return nil, nil
	}

	user, err := users.GetByUsernameOrEmail(ctx, &claims.Username, nil)
	if err != nil {
		logger.Log.Errorw("failed to load user", "username", claims.Username, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("token for unknown user", "username", claims.Username)
	}
	return user, nil
}

func writeAuthError(w http.ResponseWriter, err error) {
	if appErr, ok := apperr.From(err); ok && appErr.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	apperr.Write(w, err)
}

type userContextKey struct{}

func setUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUserFromContext returns the authenticated user, or nil for guests.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userContextKey{}).(*models.UserDB)
	return user
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return setUserToContext(ctx, user)
}
