package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/flashcards-api/internal/jwt"
	"github.com/sbilibin2017/flashcards-api/internal/logger"
	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/sbilibin2017/flashcards-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor of stored password hashes.
const bcryptCost = 12

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (int64, error)
	UpdatePreferences(ctx context.Context, userID int64, color models.Color, language models.Language) error
}

// TokenGenerator issues tokens for a username.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// TokenVerifier issues and verifies tokens.
type TokenVerifier interface {
	TokenGenerator
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// AuthService handles registration, login, token refresh and profile updates.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	access  TokenGenerator
	refresh TokenVerifier
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, access TokenGenerator, refresh TokenVerifier) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		access:  access,
		refresh: refresh,
	}
}

// Register creates a user and returns its id.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	if err := svc.checkAvailable(ctx, req.Username, req.Email); err != nil {
		return 0, err
	}

	color, language := models.ColorYellow, models.LanguageEN
	if c, ok := models.ParseColor(req.Color); ok {
		color = c
	}
	if l, ok := models.ParseLanguage(req.Language); ok {
		language = l
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	userID, err := svc.writer.Save(ctx, models.UserDB{
		Username:       req.Username,
		Email:          req.Email,
		Color:          color,
		Language:       language,
		HashedPassword: string(hashedPassword),
	})
	var uv *repositories.UniqueViolationError
	if errors.As(err, &uv) {
		// Lost a race with a concurrent registration.
		logger.Log.Infow("user already exists", "constraint", uv.Constraint)
		if strings.Contains(uv.Constraint, "email") {
			return 0, ErrEmailExists
		}
		return 0, ErrUsernameExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return userID, nil
}

// checkAvailable fails when the username or the email is taken, username first.
func (svc *AuthService) checkAvailable(ctx context.Context, username, email string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Infow("username already exists", "username", username)
		return ErrUsernameExists
	}

	user, err = svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Infow("email already exists", "email", email)
		return ErrEmailExists
	}
	return nil
}

// Login authenticates a user and returns an access and a refresh token.
// Unknown users and wrong passwords fail the same way.
func (svc *AuthService) Login(ctx context.Context, username, password string) (access, refresh string, err error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", "", ErrInvalidCredentials
	}

	if access, err = svc.access.Generate(ctx, user.Username); err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}
	if refresh, err = svc.refresh.Generate(ctx, user.Username); err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrRefreshRequired
	}

	claims, err := svc.refresh.GetClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Infow("invalid refresh token", "err", err)
		return "", ErrInvalidRefreshToken
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &claims.Username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("refresh token for unknown user", "username", claims.Username)
		return "", ErrInvalidRefreshToken
	}

	access, err := svc.access.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", err
	}
	return access, nil
}

// UpdateProfile stores new preferences for the user and returns the profile.
func (svc *AuthService) UpdateProfile(ctx context.Context, user *models.UserDB, req models.ProfileUpdateRequest) (models.ProfileResponse, error) {
	color, ok := models.ParseColor(req.Color)
	if !ok {
		return models.ProfileResponse{}, ErrInvalidPreferences.WithDetails(map[string]any{"color": "oneof"})
	}
	language, ok := models.ParseLanguage(req.Language)
	if !ok {
		return models.ProfileResponse{}, ErrInvalidPreferences.WithDetails(map[string]any{"language": "oneof"})
	}

	if err := svc.writer.UpdatePreferences(ctx, user.UserID, color, language); err != nil {
		logger.Log.Errorw("failed to update preferences", "user_id", user.UserID, "err", err)
		return models.ProfileResponse{}, err
	}

	updated := *user
	updated.Color, updated.Language = color, language
	return updated.Profile(), nil
}
