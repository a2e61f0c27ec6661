package ports

import (
	"context"

	"github.com/peoplehub/employee-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	// Unknown usernames and wrong passwords are indistinguishable: both
	// return domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// VerifyToken checks signature and expiry and returns the subject
	// username. Any failure is domain.ErrInvalidToken.
	VerifyToken(token string) (string, error)
}
