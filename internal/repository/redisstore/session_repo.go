package redisstore

import (
	"context"
	"errors"
	"fmt"

	"hirerevops-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionRepo struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) domain.SessionRepository {
	return &sessionRepo{client: client}
}

// Create stores the session with no TTL; sessions live until an explicit
// logout deletes them.
func (r *sessionRepo) Create(ctx context.Context, session *domain.Session) error {
	key := sessionKeyPrefix + session.ID
	if err := r.client.Set(ctx, key, session.UserID, 0).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetUserID(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return userID, nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
