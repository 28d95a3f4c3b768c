package service

import (
	"context"
	"strings"
	"time"

	"github.com/pekka-mall/sso-service/internal/domain"
	"github.com/pekka-mall/sso-service/internal/repository/ports"
	"github.com/pekka-mall/sso-service/internal/util"
)

// Config carries the session parameters injected at construction. The key
// namespace belongs to the session store itself; the service only decides
// how long entries live.
type Config struct {
	SessionTTL time.Duration
}

// SSOService orchestrates registration, credential verification and the
// cache-backed session lifecycle. All shared state lives in the injected
// identity store and session cache.
type SSOService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	cfg      Config
}

func NewSSOService(users ports.UserRepository, sessions ports.SessionStore, cfg Config) *SSOService {
	return &SSOService{users: users, sessions: sessions, cfg: cfg}
}

// CheckAvailability reports whether the given value is free to register in
// the selected field. A taken value is not an error; an unknown field
// selector is.
func (s *SSOService) CheckAvailability(ctx context.Context, data string, field domain.UserField) (bool, error) {
	if !field.Valid() {
		return false, ErrInvalidField
	}
	exists, err := s.users.ExistsByField(ctx, field, data)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// Register validates the candidate record and persists it. Validation
// short-circuits on the first failure; nothing is written until every
// check has passed.
func (s *SSOService) Register(ctx context.Context, user *domain.User) error {
	if isBlank(user.Username) {
		return ErrUsernameRequired
	}
	available, err := s.CheckAvailability(ctx, user.Username, domain.FieldUsername)
	if err != nil {
		return err
	}
	if !available {
		return ErrUsernameTaken
	}

	if user.Password == nil || isBlank(*user.Password) {
		return ErrPasswordRequired
	}

	available, err = s.CheckAvailability(ctx, user.Phone, domain.FieldPhone)
	if err != nil {
		return err
	}
	if !available {
		return ErrPhoneTaken
	}

	available, err = s.CheckAvailability(ctx, user.Email, domain.FieldEmail)
	if err != nil {
		return err
	}
	if !available {
		return ErrEmailTaken
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	hash, salt, err := util.DerivePassword(*user.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.PasswordSalt = salt
	user.Password = nil

	return s.users.Insert(ctx, user)
}

// Login verifies the credentials and, on success, issues an opaque token
// and writes the sanitized record into the session cache with the
// configured TTL. Missing user and wrong password are indistinguishable
// to the caller; neither writes to the cache.
func (s *SSOService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token := util.NewSessionToken()
	user.Sanitize()

	if err := s.sessions.Set(ctx, token, user, s.cfg.SessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

// GetUserByToken resolves an active session and extends it by the full TTL
// (sliding expiration). This is the only path that mutates an entry's TTL
// without rewriting its value.
func (s *SSOService) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionExpired
	}
	if err := s.sessions.Refresh(ctx, token, s.cfg.SessionTTL); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout drops the session entry. Unknown tokens are deleted all the same,
// so repeated logouts succeed.
func (s *SSOService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
