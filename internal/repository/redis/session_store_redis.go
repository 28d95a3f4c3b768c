package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pekka-mall/sso-service/internal/domain"
)

// SessionStore keeps session entries in Redis under `<namespace>:<token>`.
// The stored value is the JSON-serialized user record with credentials
// cleared; expiry is left entirely to Redis.
type SessionStore struct {
	client    *goredis.Client
	namespace string
}

func NewSessionStore(client *goredis.Client, namespace string) *SessionStore {
	return &SessionStore{client: client, namespace: namespace}
}

func (s *SessionStore) key(token string) string {
	return s.namespace + ":" + token
}

func (s *SessionStore) Set(ctx context.Context, token string, user *domain.User, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session store: marshal entry: %w", err)
	}
	return s.client.Set(ctx, s.key(token), data, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, fmt.Errorf("session store: unmarshal entry: %w", err)
	}
	return &user, nil
}

func (s *SessionStore) Refresh(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Expire(ctx, s.key(token), ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
