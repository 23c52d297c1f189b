package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/snake-arena/internal/logger"
)

const sessionKeyPrefix = "snake:session:"

// SessionRepository keeps login sessions in Redis, keyed by a digest of the token.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new repository instance
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}

// Save binds the token to the user until ttl elapses.
func (r *SessionRepository) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	key := sessionKey(token)
	err := r.client.Set(ctx, key, userID.String(), ttl).Err()

	logger.Log.Infow("session saved",
		"key", key,
		"user_id", userID,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Get returns the user bound to the token, or nil if the session is unknown or expired.
func (r *SessionRepository) Get(ctx context.Context, token string) (*uuid.UUID, error) {
	key := sessionKey(token)
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("session lookup",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return nil, err
	}
	return &userID, nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	key := sessionKey(token)
	n, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow("session deleted",
		"key", key,
		"result", n,
		"error", err,
	)

	return err
}
