package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/restaurant-platform/auth-service/internal/core/domain"
	"github.com/restaurant-platform/auth-service/internal/core/ports"
)

// HMACCodec signs and verifies tokens with a shared secret (HS256). The same
// key grants both capabilities, so every holder of the secret can mint tokens.
type HMACCodec struct {
	secret []byte
	now    func() time.Time
}

// NewHMACCodec wraps the shared secret. The secret is copied once and never
// mutated, so the codec is safe for concurrent use.
func NewHMACCodec(secret []byte) *HMACCodec {
	return &HMACCodec{secret: append([]byte(nil), secret...), now: time.Now}
}

func (c *HMACCodec) Issue(claims ports.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, newAccessClaims(claims, c.now()))
	return t.SignedString(c.secret)
}

func (c *HMACCodec) Validate(token string) (ports.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, parserOptions()...)
	if err != nil || !parsed.Valid {
		return ports.Claims{}, domain.ErrAuthenticationFailed
	}
	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || claims.Subject == "" {
		return ports.Claims{}, domain.ErrAuthenticationFailed
	}
	return claims.ports(), nil
}
