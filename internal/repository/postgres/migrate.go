package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// The unique indexes back the service-level availability checks: a
// registration that loses the check-then-insert race fails on insert
// instead of producing a duplicate row.
const bootstrapMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS user_account (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    username text NOT NULL,
    password_hash bytea NOT NULL,
    password_salt bytea NOT NULL,
    phone text NOT NULL DEFAULT '',
    email text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS user_account_username_unique
ON user_account (username);

CREATE UNIQUE INDEX IF NOT EXISTS user_account_phone_unique
ON user_account (phone);

CREATE UNIQUE INDEX IF NOT EXISTS user_account_email_unique
ON user_account (email);
`

func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, bootstrapMigration)
	return err
}
