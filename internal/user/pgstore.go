package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// PGStore persists users in postgres. Email uniqueness is enforced by
// a unique index, which closes the duplicate-registration race at the
// store level.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

const uniqueViolation = "23505"

func (s *PGStore) Add(ctx context.Context, email, hashedPassword string) (*User, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, hashed_password)
		VALUES ($1, $2)
		RETURNING id
	`, email, hashedPassword).Scan(&id)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("user: add: %w", err)
	}

	return &User{
		ID:             id,
		Email:          email,
		HashedPassword: hashedPassword,
	}, nil
}

func (s *PGStore) FindOneBy(ctx context.Context, criteria map[string]string) (*User, error) {
	if len(criteria) == 0 {
		return nil, ErrInvalidQuery
	}

	conditions := make([]string, 0, len(criteria))
	args := make([]any, 0, len(criteria))
	for field, value := range criteria {
		if !knownField(field) {
			return nil, ErrInvalidQuery
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("COALESCE(%s::text, '') = $%d", field, len(args)))
	}

	var (
		u          User
		sessionID  sql.NullString
		resetToken sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, hashed_password, session_id, reset_token
		FROM users
		WHERE `+strings.Join(conditions, " AND "),
		args...,
	).Scan(&u.ID, &u.Email, &u.HashedPassword, &sessionID, &resetToken)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user: find: %w", err)
	}

	u.SessionID = sessionID.String
	u.ResetToken = resetToken.String
	return &u, nil
}

func (s *PGStore) UpdateByID(ctx context.Context, id string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for field, value := range fields {
		if !knownField(field) || field == FieldID {
			return ErrUnknownField
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = NULLIF($%d, '')", field, len(args)))
	}
	args = append(args, id)

	// Single UPDATE statement, so concurrent updates cannot
	// interleave partial field writes.
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE users SET %s WHERE id = $%d`,
		strings.Join(assignments, ", "), len(args),
	), args...)
	if err != nil {
		return fmt.Errorf("user: update: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user: update: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
