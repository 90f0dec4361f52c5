package users

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account record. PasswordHash is the encoded
// one-way hash; the plaintext secret never reaches this struct.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
