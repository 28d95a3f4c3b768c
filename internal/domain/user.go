package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record owned by the user store. Password carries the
// plaintext only between the transport layer and the service; it is cleared
// before the record is persisted or cached, so session entries serialize it
// as null.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Password     *string   `db:"-" json:"password"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
	PasswordSalt []byte    `db:"password_salt" json:"-"`
	Phone        string    `db:"phone" json:"phone"`
	Email        string    `db:"email" json:"email"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Sanitize clears every credential field. Called before a record leaves the
// service, whether into the session cache or an HTTP response.
func (u *User) Sanitize() {
	u.Password = nil
	u.PasswordHash = nil
	u.PasswordSalt = nil
}
