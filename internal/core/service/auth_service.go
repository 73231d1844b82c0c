package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/restaurant-platform/auth-service/internal/core/domain"
	"github.com/restaurant-platform/auth-service/internal/core/ports"
	"github.com/restaurant-platform/auth-service/internal/core/token"
)

// tokenType is the fixed descriptor returned with every issued token.
const tokenType = "bearer"

// AuthService implements registration, login and token-backed profile reads.
// It holds only injected collaborators; every request is handled
// independently.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository // nil in the stateless deployment
	hasher   ports.PasswordHasher
	codec    ports.TokenCodec
	tokenTTL time.Duration
	now      func() time.Time
}

// NewAuthService wires the service. sessions may be nil; no session record is
// written then. A non-positive ttl falls back to token.DefaultTTL.
func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, hasher ports.PasswordHasher, codec ports.TokenCodec, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = token.DefaultTTL
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		codec:    codec,
		tokenTTL: ttl,
		now:      time.Now,
	}
}

// Register creates an account. Uniqueness is pre-checked email first, then
// username, so when both collide the email conflict surfaces. The storage
// layer enforces the same constraints again on insert; its conflict errors
// pass through unchanged, closing the check-then-insert race.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.Profile, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.Profile{}, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.Profile{}, fmt.Errorf("register: lookup email: %w", err)
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return domain.Profile{}, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.Profile{}, fmt.Errorf("register: lookup username: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("register: hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrDuplicateUsername) {
			return domain.Profile{}, err
		}
		return domain.Profile{}, fmt.Errorf("register: create user: %w", err)
	}

	return created.Profile(), nil
}

// Login matches the identifier against the email column, verifies the
// password and issues a token. Unknown email and wrong password return the
// same error value, so callers cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ports.LoginResult{}, domain.ErrAuthenticationFailed
		}
		return ports.LoginResult{}, fmt.Errorf("login: lookup email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return ports.LoginResult{}, domain.ErrAuthenticationFailed
	}

	expiresAt := s.now().Add(s.tokenTTL)
	signed, err := s.codec.Issue(ports.Claims{
		Subject:   user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("login: issue token: %w", err)
	}

	if s.sessions != nil {
		record := &domain.SessionRecord{
			UserID:       user.ID,
			SessionToken: signed,
			ExpiresAt:    expiresAt,
		}
		if err := s.sessions.Create(ctx, record); err != nil {
			return ports.LoginResult{}, fmt.Errorf("login: persist session: %w", err)
		}
	}

	return ports.LoginResult{AccessToken: signed, TokenType: tokenType}, nil
}

// Authenticate validates the token and resolves the account it names.
// A valid token whose subject no longer exists is a distinct not-found
// outcome: the credential itself was genuine.
func (s *AuthService) Authenticate(ctx context.Context, bearer string) (domain.Profile, error) {
	claims, err := s.codec.Validate(bearer)
	if err != nil {
		return domain.Profile{}, domain.ErrAuthenticationFailed
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Profile{}, domain.ErrUserNotFound
		}
		return domain.Profile{}, fmt.Errorf("authenticate: lookup user: %w", err)
	}

	return user.Profile(), nil
}
