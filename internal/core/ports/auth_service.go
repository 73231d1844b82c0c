package ports

import (
	"context"

	"github.com/restaurant-platform/auth-service/internal/core/domain"
)

// LoginResult is the wire shape of a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService exposes the three operations of the credential service.
type AuthService interface {
	// Register creates an account with the fixed customer role and returns
	// its profile view.
	Register(ctx context.Context, username, email, password string) (domain.Profile, error)

	// Login matches the identifier against the email column, verifies the
	// password and issues a bearer token.
	Login(ctx context.Context, identifier, password string) (LoginResult, error)

	// Authenticate validates a bearer token and resolves the profile of the
	// account it refers to.
	Authenticate(ctx context.Context, token string) (domain.Profile, error)
}
