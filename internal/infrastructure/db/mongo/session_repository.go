package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/restaurant-platform/auth-service/internal/core/domain"
)

const sessionsCollection = "sessions"

// SessionRepository persists session records in the sessions collection,
// mirroring the relational session table this service replaces. Records are
// write-only in scope; revocation would delete by session_token or user_id.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	UserID       string `bson:"user_id"`
	SessionToken string `bson:"session_token"`
	ExpiresAt    int64  `bson:"expires_at"`
}

func (r *SessionRepository) Create(ctx context.Context, record *domain.SessionRecord) error {
	doc := mongoSession{
		UserID:       record.UserID,
		SessionToken: record.SessionToken,
		ExpiresAt:    record.ExpiresAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}
