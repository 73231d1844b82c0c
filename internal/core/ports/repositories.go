package ports

import (
	"context"

	"github.com/restaurant-platform/auth-service/internal/core/domain"
)

// UserRepository defines the persistence contract for accounts.
// Create must enforce username and email uniqueness at the storage layer and
// return domain.ErrDuplicateEmail or domain.ErrDuplicateUsername on conflict;
// the service-level pre-checks alone leave a check-then-insert race open.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SessionRepository persists session records issued at login. Only the write
// side exists; nothing in scope reads sessions back.
type SessionRepository interface {
	Create(ctx context.Context, record *domain.SessionRecord) error
}
