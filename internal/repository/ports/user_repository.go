package ports

import (
	"context"

	"github.com/pekka-mall/sso-service/internal/domain"
)

// UserRepository is the identity store consumed by the SSO service. The
// store owns the user record's lifecycle; the service only looks up by
// field and requests inserts.
type UserRepository interface {
	// ExistsByField reports whether any record has the given value in the
	// selected field. Callers must pass a valid field selector.
	ExistsByField(ctx context.Context, field domain.UserField, value string) (bool, error)
	// FindByUsername returns (nil, nil) when no record matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
}
