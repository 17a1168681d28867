package ports

import (
	"context"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

// AuthClient talks to the external authentication HTTP API. The platform
// consumes this service; it never implements credential storage itself.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (token string, user *domain.Profile, err error)
	ForgetPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// TokenVerifier locally validates a persisted credential and derives the
// profile embedded in it. Used by session hydration so a boot does not need
// a round trip to the auth service.
type TokenVerifier interface {
	Verify(token string) (*domain.Profile, error)
}
