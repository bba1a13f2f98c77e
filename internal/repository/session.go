package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
)

// SessionRepository хранит сессии в Redis под ключом session:<jti>
type SessionRepository struct {
	redisClient *redis.Client
}

func NewSessionRepository(redisClient *redis.Client) service.SessionRepository {
	return &SessionRepository{redisClient: redisClient}
}

func (r *SessionRepository) CreateSession(ctx context.Context, tokenID string, session models.Session, ttl time.Duration) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.redisClient.Set(ctx, sessionKey(tokenID), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession возвращает nil, nil если сессия не найдена
func (r *SessionRepository) GetSession(ctx context.Context, tokenID string) (*models.Session, error) {
	val, err := r.redisClient.Get(ctx, sessionKey(tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, tokenID string) error {
	if err := r.redisClient.Del(ctx, sessionKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(tokenID string) string {
	return "session:" + tokenID
}
