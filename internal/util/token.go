package util

import "github.com/google/uuid"

// NewSessionToken returns an opaque session token: a random v4 UUID string,
// 128 bits of entropy. The token has no relationship to any user identifier;
// it is only ever used as a cache key and bearer credential.
func NewSessionToken() string {
	return uuid.NewString()
}
