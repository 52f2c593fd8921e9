package db

import (
	"context"
	"database/sql"
)

const usersMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    email text NOT NULL,
    hashed_password text NOT NULL,
    session_id text,
    reset_token text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique
ON users (LOWER(email));

CREATE INDEX IF NOT EXISTS users_reset_token_idx
ON users (reset_token) WHERE reset_token IS NOT NULL;
`

// Migrate creates the users schema. Statements are idempotent so the
// migration can run on every boot.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, usersMigration)
	return err
}
