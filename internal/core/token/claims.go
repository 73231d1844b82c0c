// Package token provides the two bearer-token codecs: HS256 with a shared
// secret and RS256 with an RSA keypair. Both encode the same claims and both
// collapse every validation failure into domain.ErrAuthenticationFailed.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/restaurant-platform/auth-service/internal/core/ports"
)

// DefaultTTL is the token lifetime applied when the configuration does not
// override it.
const DefaultTTL = 60 * time.Minute

// accessClaims is the JWT payload: registered claims plus the account role,
// so authorization checks need no database round-trip.
type accessClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func newAccessClaims(c ports.Claims, now time.Time) *accessClaims {
	return &accessClaims{
		Role: c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.Subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
		},
	}
}

func (c *accessClaims) ports() ports.Claims {
	out := ports.Claims{Subject: c.Subject, Role: c.Role}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}

// parserOptions enforces strict expiry: no leeway is applied, and a token
// without an exp claim is rejected outright.
func parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	}
}
