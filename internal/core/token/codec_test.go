package token

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"

	"github.com/restaurant-platform/auth-service/internal/core/domain"
	"github.com/restaurant-platform/auth-service/internal/core/ports"
)

func testCodecs(t *testing.T) map[string]ports.TokenCodec {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	rsaCodec, err := NewRSACodec(key, &key.PublicKey)
	if err != nil {
		t.Fatalf("build rsa codec: %v", err)
	}

	return map[string]ports.TokenCodec{
		"hmac": NewHMACCodec([]byte("test-secret")),
		"rsa":  rsaCodec,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	for name, codec := range testCodecs(t) {
		t.Run(name, func(t *testing.T) {
			in := ports.Claims{
				Subject:   "user-42",
				Role:      domain.RoleCustomer,
				ExpiresAt: time.Now().Add(time.Hour),
			}

			signed, err := codec.Issue(in)
			if err != nil {
				t.Fatalf("Issue: %v", err)
			}
			if signed == "" {
				t.Fatalf("expected token, got empty")
			}

			out, err := codec.Validate(signed)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if out.Subject != in.Subject {
				t.Fatalf("subject changed: %q", out.Subject)
			}
			if out.Role != in.Role {
				t.Fatalf("role changed: %q", out.Role)
			}
			if out.ExpiresAt.Unix() != in.ExpiresAt.Unix() {
				t.Fatalf("expiry changed: %v vs %v", out.ExpiresAt, in.ExpiresAt)
			}
		})
	}
}

func TestCodec_UniqueTokenIDs(t *testing.T) {
	codec := NewHMACCodec([]byte("test-secret"))
	claims := ports.Claims{Subject: "user-1", ExpiresAt: time.Now().Add(time.Hour)}

	first, err := codec.Issue(claims)
	if err != nil {
		t.Fatalf("first Issue: %v", err)
	}
	second, err := codec.Issue(claims)
	if err != nil {
		t.Fatalf("second Issue: %v", err)
	}
	if first == second {
		t.Fatalf("two issued tokens are identical")
	}
}

func TestCodec_ExpiredToken(t *testing.T) {
	for name, codec := range testCodecs(t) {
		t.Run(name, func(t *testing.T) {
			signed, err := codec.Issue(ports.Claims{
				Subject:   "user-42",
				ExpiresAt: time.Now().Add(-time.Minute),
			})
			if err != nil {
				t.Fatalf("Issue: %v", err)
			}

			if _, err := codec.Validate(signed); err != domain.ErrAuthenticationFailed {
				t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
			}
		})
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	for name, codec := range testCodecs(t) {
		t.Run(name, func(t *testing.T) {
			signed, err := codec.Issue(ports.Claims{
				Subject:   "user-42",
				ExpiresAt: time.Now().Add(time.Hour),
			})
			if err != nil {
				t.Fatalf("Issue: %v", err)
			}

			parts := strings.Split(signed, ".")
			if len(parts) != 3 {
				t.Fatalf("unexpected token shape: %d segments", len(parts))
			}
			sig := []byte(parts[2])
			if sig[0] == 'A' {
				sig[0] = 'B'
			} else {
				sig[0] = 'A'
			}
			tampered := parts[0] + "." + parts[1] + "." + string(sig)

			if _, err := codec.Validate(tampered); err != domain.ErrAuthenticationFailed {
				t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
			}
		})
	}
}

func TestCodec_WrongKey(t *testing.T) {
	signed, err := NewHMACCodec([]byte("key-one")).Issue(ports.Claims{
		Subject:   "user-42",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewHMACCodec([]byte("key-two")).Validate(signed); err != domain.ErrAuthenticationFailed {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestCodec_CrossStrategyRejected(t *testing.T) {
	codecs := testCodecs(t)
	claims := ports.Claims{Subject: "user-42", ExpiresAt: time.Now().Add(time.Hour)}

	hmacToken, err := codecs["hmac"].Issue(claims)
	if err != nil {
		t.Fatalf("hmac Issue: %v", err)
	}
	rsaToken, err := codecs["rsa"].Issue(claims)
	if err != nil {
		t.Fatalf("rsa Issue: %v", err)
	}

	if _, err := codecs["rsa"].Validate(hmacToken); err != domain.ErrAuthenticationFailed {
		t.Fatalf("rsa codec accepted an hmac token: %v", err)
	}
	if _, err := codecs["hmac"].Validate(rsaToken); err != domain.ErrAuthenticationFailed {
		t.Fatalf("hmac codec accepted an rsa token: %v", err)
	}
}

func TestCodec_MalformedToken(t *testing.T) {
	for name, codec := range testCodecs(t) {
		t.Run(name, func(t *testing.T) {
			for _, bad := range []string{"", "garbage", "a.b", "a.b.c.d"} {
				if _, err := codec.Validate(bad); err != domain.ErrAuthenticationFailed {
					t.Fatalf("token %q: expected ErrAuthenticationFailed, got %v", bad, err)
				}
			}
		})
	}
}

func TestRSACodec_ValidateOnly(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	signer, err := NewRSACodec(key, &key.PublicKey)
	if err != nil {
		t.Fatalf("build signer: %v", err)
	}
	verifier, err := NewRSACodec(nil, &key.PublicKey)
	if err != nil {
		t.Fatalf("build verifier: %v", err)
	}

	signed, err := signer.Issue(ports.Claims{Subject: "user-42", ExpiresAt: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Validate(signed); err != nil {
		t.Fatalf("verifier rejected a valid token: %v", err)
	}
	if _, err := verifier.Issue(ports.Claims{Subject: "x", ExpiresAt: time.Now().Add(time.Hour)}); err == nil {
		t.Fatalf("expected Issue to fail without a private key")
	}
}
