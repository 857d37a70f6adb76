package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
)

const (
	sessionTokenPrefix = "session:user:token"
	sessionTokenTTL    = 30 * time.Minute
)

// SessionRepository keeps the facade's logical sessions: one live access
// token per user, renewed on each authenticated request. The core data layer
// never reads this — the caller id always arrives as an explicit parameter.
type SessionRepository struct{}

func sessionKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", sessionTokenPrefix, userID)
}

func (r *SessionRepository) Save(ctx context.Context, userID uint64, token string) error {
	if err := Client.Set(ctx, sessionKey(userID), token, sessionTokenTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, userID uint64) (string, error) {
	token, err := Client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) Extend(ctx context.Context, userID uint64) error {
	return Client.Expire(ctx, sessionKey(userID), sessionTokenTTL).Err()
}

func (r *SessionRepository) Delete(ctx context.Context, userID uint64) error {
	return Client.Del(ctx, sessionKey(userID)).Err()
}
