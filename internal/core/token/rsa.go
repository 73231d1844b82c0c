package token

import (
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/restaurant-platform/auth-service/internal/core/domain"
	"github.com/restaurant-platform/auth-service/internal/core/ports"
)

// RSACodec signs with an RSA private key and verifies with the public key
// (RS256). Verification-only deployments construct the codec with a nil
// private key; Issue then fails.
type RSACodec struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	now     func() time.Time
}

var errNoSigningKey = errors.New("token: codec has no private key")

// NewRSACodec builds a codec from the keypair. The public key is required;
// the private key may be nil for validate-only use. Keys are never mutated
// after construction.
func NewRSACodec(private *rsa.PrivateKey, public *rsa.PublicKey) (*RSACodec, error) {
	if public == nil {
		return nil, errors.New("token: public key is required")
	}
	return &RSACodec{private: private, public: public, now: time.Now}, nil
}

func (c *RSACodec) Issue(claims ports.Claims) (string, error) {
	if c.private == nil {
		return "", errNoSigningKey
	}
	t := jwt.NewWithClaims(jwt.SigningMethodRS256, newAccessClaims(claims, c.now()))
	return t.SignedString(c.private)
}

func (c *RSACodec) Validate(token string) (ports.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.public, nil
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
