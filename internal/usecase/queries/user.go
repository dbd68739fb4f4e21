package queries

import (
	"context"

	"github.com/google/uuid"
)

// UserReadStore resolves login identities and profiles.
type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*CredentialView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

// CredentialView carries the stored password hash for login verification
// and never leaves the auth path.
type CredentialView struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}
