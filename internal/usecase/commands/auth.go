package commands

import (
	"context"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/infra"
	"fleet-reservations/internal/pkg/errs"
	"fleet-reservations/internal/pkg/jwt"
	"fleet-reservations/internal/pkg/password"
	"fleet-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResult struct {
	Token string
	User  queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	users queries.UserReadStore
	jwt   *jwt.Service
}

func NewAuthCommands(users queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, jwt: jwtService}
}

// Login verifies credentials and issues a signed token. Unknown email,
// wrong password and deactivated account all collapse into the same
// authentication failure so the response does not leak which one it was.
func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	if email == "" || plainPassword == "" {
		return nil, errs.ErrInvalidInput
	}

	cred, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
		}
		return nil, errs.Mark(err, errs.ErrDependencyUnavailable)
	}
	if !cred.IsActive {
		return nil, errs.ErrAuthenticationFailed
	}
	if err := password.ComparePassword(cred.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
	}

	role, err := actor.NewRole(cred.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
	}
	token, err := c.jwt.GenerateToken(cred.ID, role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDependencyUnavailable)
	}

	return &LoginResult{
		Token: token,
		User: queries.AuthorizedUserView{
			ID:       cred.ID,
			Email:    cred.Email,
			Role:     cred.Role,
			IsActive: cred.IsActive,
		},
	}, nil
}

// Me resolves the authenticated user's profile. A token whose subject no
// longer exists reads as an authentication failure, not a server fault.
func (c *authCommandsImpl) Me(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
		}
		return nil, errs.Mark(err, errs.ErrDependencyUnavailable)
	}
	return view, nil
}
