package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/restaurant-platform/auth-service/internal/core/domain"
)

// SessionRepository stores session records as TTL keys, so expired sessions
// vanish without a reaper. Key format: session:<token> → user id, expiring at
// the token's own expiry.
type SessionRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client, now: time.Now}
}

func (r *SessionRepository) Create(ctx context.Context, record *domain.SessionRecord) error {
	ttl := record.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		// Already expired; nothing worth storing.
		return nil
	}
	if err := r.client.Set(ctx, r.key(record.SessionToken), record.UserID, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *SessionRepository) key(token string) string {
	return "session:" + token
}
