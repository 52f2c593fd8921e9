package auth

import (
	"context"

	"github.com/google/uuid"

	"authd/internal/auth/credentials"
	"authd/internal/user"
)

// ResetTokenManager issues and consumes one-shot password reset
// tokens. A user holds at most one token at a time; issuing a new one
// overwrites the previous, and a consumed token is gone for good.
type ResetTokenManager struct {
	users user.Store
}

func NewResetTokenManager(users user.Store) *ResetTokenManager {
	return &ResetTokenManager{users: users}
}

// Issue generates a fresh reset token for the account with the given
// email, replacing any prior unused token. user.ErrNotFound when no
// account has that email.
func (m *ResetTokenManager) Issue(ctx context.Context, email string) (string, error) {
	u, err := m.users.FindOneBy(ctx, map[string]string{user.FieldEmail: email})
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := m.users.UpdateByID(ctx, u.ID, map[string]string{
		user.FieldResetToken: token,
	}); err != nil {
		return "", err
	}

	return token, nil
}

// Consume trades a valid token for a password change. The new hash is
// computed first; the password swap and the token clear then land in
// one update, so a failed hash never burns the token and a consumed
// token can never be replayed.
func (m *ResetTokenManager) Consume(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return user.ErrNotFound
	}

	u, err := m.users.FindOneBy(ctx, map[string]string{user.FieldResetToken: token})
	if err != nil {
		return err
	}

	hashed, err := credentials.Hash(newPassword)
	if err != nil {
		return err
	}

	return m.users.UpdateByID(ctx, u.ID, map[string]string{
		user.FieldHashedPassword: hashed,
		user.FieldResetToken:     "",
	})
}
