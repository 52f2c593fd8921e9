package user

import "context"

// Store is the record storage contract for users. All mutation of a
// persisted User goes through UpdateByID; no caller writes fields
// directly.
type Store interface {
	// Add creates a user with the given email and password hash.
	// Returns ErrDuplicateEmail if the email is taken. The check is
	// atomic: two concurrent Adds with the same email cannot both
	// succeed.
	Add(ctx context.Context, email, hashedPassword string) (*User, error)

	// FindOneBy returns the unique record matching every criterion.
	// ErrNotFound on zero matches, ErrInvalidQuery when a criterion
	// names an unsupported field.
	FindOneBy(ctx context.Context, criteria map[string]string) (*User, error)

	// UpdateByID applies a partial update to exactly the named
	// fields. ErrNotFound if the id does not exist, ErrUnknownField
	// if a name is not a User attribute. The update is atomic at
	// record granularity.
	UpdateByID(ctx context.Context, id string, fields map[string]string) error
}
