package service

import "errors"

// Client-facing failures. Anything outside this set is treated as a
// dependency failure and must not leak to the caller verbatim.
var (
	ErrInvalidField       = errors.New("invalid field type")
	ErrUsernameRequired   = errors.New("username must not be empty")
	ErrPasswordRequired   = errors.New("password must not be empty")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionExpired     = errors.New("session expired or not logged in")
)

var clientErrors = []error{
	ErrInvalidField,
	ErrUsernameRequired,
	ErrPasswordRequired,
	ErrUsernameTaken,
	ErrPhoneTaken,
	ErrEmailTaken,
	ErrInvalidCredentials,
	ErrSessionExpired,
}

// IsClientError reports whether err belongs to the 400 class. Errors from
// the identity store or session cache fall through as dependency failures.
func IsClientError(err error) bool {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
