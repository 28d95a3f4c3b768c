package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pekka-mall/sso-service/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ExistsByField(ctx context.Context, field domain.UserField, value string) (bool, error) {
	var column string
	switch field {
	case domain.FieldUsername:
		column = "username"
	case domain.FieldPhone:
		column = "phone"
	case domain.FieldEmail:
		column = "email"
	default:
		return false, fmt.Errorf("user repo: unknown field selector %d", field)
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM user_account WHERE %s = $1)`, column)

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, value); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, password_salt, phone, email, created_at, updated_at
        FROM user_account
        WHERE username = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO user_account (username, password_hash, password_salt, phone, email, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	row := r.db.QueryRowxContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.PasswordSalt,
		user.Phone,
		user.Email,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return row.Scan(&user.ID)
}
