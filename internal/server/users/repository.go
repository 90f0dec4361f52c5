package users

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists and queries user records. The two backend
// implementations must be behaviorally equivalent: for identical
// inputs, read-back yields field-identical Users regardless of how the
// backend encodes them. Every backend-native error is translated into
// the common taxonomy before it leaves the repository, so callers
// never branch on backend type.
type Repository interface {
	// Create inserts a new user row. The row id is generated inside
	// the repository; created_at is assigned by the storage engine.
	Create(ctx context.Context, username, email, passwordHash string) error

	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Update changes username and email. common.ErrNotFound when no
	// row matches.
	Update(ctx context.Context, id uuid.UUID, username, email string) error

	// Delete removes the user, reporting whether a row existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
