package ports

import (
	"context"
	"time"

	"github.com/pekka-mall/sso-service/internal/domain"
)

// SessionStore is the key-value cache holding active session entries. Keys
// are opaque tokens; implementations apply their own namespace prefix.
// Entries expire on their own once the TTL elapses.
type SessionStore interface {
	// Set writes the serialized record under the token with the given TTL.
	Set(ctx context.Context, token string, user *domain.User, ttl time.Duration) error
	// Get returns (nil, nil) when the token is absent or expired.
	Get(ctx context.Context, token string) (*domain.User, error)
	// Refresh resets the entry's TTL to the full window without touching
	// the stored value.
	Refresh(ctx context.Context, token string, ttl time.Duration) error
	// Delete removes the entry. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
