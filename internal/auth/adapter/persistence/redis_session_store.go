package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/auth/domain/repository"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/logger"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore persists dashboard sessions in Redis. Each session's TTL
// mirrors its token expiry so Redis evicts sessions the moment their tokens
// stop being usable.
type RedisSessionStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisSessionStore creates a new Redis-backed session store
func NewRedisSessionStore(client *redis.Client, log logger.Logger) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		logger: log.WithComponent("session_store"),
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Save stores the session under its ID for at most ttl. A ttl of zero stores
// the session without expiry.
func (s *RedisSessionStore) Save(ctx context.Context, session *model.Session, ttl time.Duration) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session with ID is required")
	}
	if ttl < 0 {
		return fmt.Errorf("session ttl must not be negative")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"session_id": session.ID,
		"user_id":    session.User.ID,
		"ttl":        ttl.String(),
	}).Debug("Session stored")

	return nil
}

// Update rewrites an existing session without disturbing its remaining TTL.
// The write is conditional on the key still existing so an expired session
// cannot be resurrected without expiry.
func (s *RedisSessionStore) Update(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session with ID is required")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	ok, err := s.client.SetXX(ctx, sessionKey(session.ID), data, redis.KeepTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if !ok {
		return apperrors.ErrSessionNotFound
	}

	return nil
}

// Load fetches and deserializes a session. Entries that cannot be decoded
// are purged so the next login starts from a clean slate.
func (s *RedisSessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, apperrors.ErrSessionNotFound
	}

	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	session := &model.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		s.logger.Warnf("Purging unreadable session %s: %v", id, err)
		if delErr := s.client.Del(ctx, sessionKey(id)).Err(); delErr != nil {
			s.logger.Errorf("Failed to purge unreadable session %s: %v", id, delErr)
		}
		return nil, apperrors.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Ensure RedisSessionStore implements the domain port
var _ repository.SessionStore = (*RedisSessionStore)(nil)
