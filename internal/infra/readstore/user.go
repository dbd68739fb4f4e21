package readstore

import (
	"context"
	"errors"

	"fleet-reservations/internal/infra"
	"fleet-reservations/internal/infra/db"
	"fleet-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

var _ queries.UserReadStore = (*UserReadStore)(nil)

const userByEmailSQL = `
SELECT id, email, role, password_hash, is_active
FROM users
WHERE email = $1`

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.CredentialView, error) {
	cred := &queries.CredentialView{}
	err := s.db.QueryRow(ctx, userByEmailSQL, email).Scan(
		&cred.ID, &cred.Email, &cred.Role, &cred.PasswordHash, &cred.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return cred, nil
}

const userByIDSQL = `
SELECT id, email, role, is_active
FROM users
WHERE id = $1`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	err := s.db.QueryRow(ctx, userByIDSQL, id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return view, nil
}
