package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemStore keeps users in process memory. It backs tests and
// deployments without a database. Safe for concurrent use.
type MemStore struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by id
}

func NewMemStore() *MemStore {
	return &MemStore{users: make(map[string]*User)}
}

func (s *MemStore) Add(ctx context.Context, email, hashedPassword string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness check and insert happen under one lock, so two
	// concurrent Adds with the same email cannot both succeed.
	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	u := &User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hashedPassword,
	}
	s.users[u.ID] = u

	out := *u
	return &out, nil
}

func (s *MemStore) FindOneBy(ctx context.Context, criteria map[string]string) (*User, error) {
	if len(criteria) == 0 {
		return nil, ErrInvalidQuery
	}
	for field := range criteria {
		if !knownField(field) {
			return nil, ErrInvalidQuery
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if matches(u, criteria) {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UpdateByID(ctx context.Context, id string, fields map[string]string) error {
	for field := range fields {
		if !knownField(field) || field == FieldID {
			return ErrUnknownField
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	for field, value := range fields {
		switch field {
		case FieldEmail:
			u.Email = value
		case FieldHashedPassword:
			u.HashedPassword = value
		case FieldSessionID:
			u.SessionID = value
		case FieldResetToken:
			u.ResetToken = value
		}
	}
	return nil
}

func matches(u *User, criteria map[string]string) bool {
	for field, value := range criteria {
		var got string
		switch field {
		case FieldID:
			got = u.ID
		case FieldEmail:
			got = u.Email
		case FieldHashedPassword:
			got = u.HashedPassword
		case FieldSessionID:
			got = u.SessionID
		case FieldResetToken:
			got = u.ResetToken
		}
		if got != value {
			return false
		}
	}
	return true
}
