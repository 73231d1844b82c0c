package ports

import "time"

// Claims is the identity payload carried by an issued token.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// TokenCodec issues and validates signed bearer tokens. Implementations are
// selected at configuration time (shared-secret HMAC or RSA keypair) and are
// safe for unrestricted concurrent use: key material is immutable after
// construction.
//
// Validate must return domain.ErrAuthenticationFailed for every rejection —
// bad signature, expired, malformed, wrong algorithm — without distinguishing
// which check failed.
type TokenCodec interface {
	Issue(claims Claims) (string, error)
	Validate(token string) (Claims, error)
}
