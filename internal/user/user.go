package user

import "errors"

var (
	// ErrNotFound means no record matched the query.
	ErrNotFound = errors.New("user: not found")
	// ErrDuplicateEmail means a create collided with an existing email.
	ErrDuplicateEmail = errors.New("user: email already registered")
	// ErrInvalidQuery means the lookup criteria reference a field the
	// schema does not support. Distinct from ErrNotFound on purpose.
	ErrInvalidQuery = errors.New("user: invalid query criteria")
	// ErrUnknownField means an update named a non-existent attribute.
	ErrUnknownField = errors.New("user: unknown field")
)

// User is the persisted account record. Email is unique across all
// users. SessionID and ResetToken are empty when unset.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	SessionID      string
	ResetToken     string
}

// Field names accepted by FindOneBy and UpdateByID.
const (
	FieldID             = "id"
	FieldEmail          = "email"
	FieldHashedPassword = "hashed_password"
	FieldSessionID      = "session_id"
	FieldResetToken     = "reset_token"
)

func knownField(name string) bool {
	switch name {
	case FieldID, FieldEmail, FieldHashedPassword, FieldSessionID, FieldResetToken:
		return true
	}
	return false
}
