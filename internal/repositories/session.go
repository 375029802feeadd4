package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/flashcards-api/internal/logger"
)

const sessionKeyPrefix = "admin_session:"

// AdminSessionRepository stores admin panel sessions in Redis.
type AdminSessionRepository struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// NewAdminSessionRepository creates a new repository instance with the given session TTL
func NewAdminSessionRepository(client *redis.Client, expiration time.Duration) *AdminSessionRepository {
	return &AdminSessionRepository{
		client: client,
		exp:    expiration,
	}
}

// Create opens a session for username and returns its id.
func (r *AdminSessionRepository) Create(ctx context.Context, username string) (string, error) {
	sessionID := uuid.NewString()
	key := sessionKeyPrefix + sessionID

	err := r.client.Set(ctx, key, username, r.exp).Err()

	logger.Log.Debugw(
		"redis set",
		"key", key,
		"username", username,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// Get returns the username bound to the session, or "" when the session is
// unknown or expired.
func (r *AdminSessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	key := sessionKeyPrefix + sessionID

	username, err := r.client.Get(ctx, key).Result()

	logger.Log.Debugw(
		"redis get",
		"key", key,
		"result", username,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return username, err
}

// Delete ends the session.
func (r *AdminSessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := sessionKeyPrefix + sessionID

	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw(
		"redis del",
		"key", key,
		"error", err,
	)

	return err
}
