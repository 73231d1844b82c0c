package domain

import "time"

// SessionRecord binds an issued token to its user and expiry. Records are
// written at login when a session store is configured and are not consulted
// by any validation path; they exist so a future revocation feature can
// delete by token or by user.
type SessionRecord struct {
	UserID       string    `json:"user_id"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
