package config

import (
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"

	"github.com/restaurant-platform/auth-service/internal/core/ports"
	"github.com/restaurant-platform/auth-service/internal/core/token"
)

// NewTokenCodec loads key material for the configured strategy and builds the
// codec. Keys are read exactly once, at startup; any failure here is fatal —
// the process must not serve requests without verifiable key material.
func NewTokenCodec(cfg TokenConfig) (ports.TokenCodec, error) {
	switch cfg.Strategy {
	case StrategyHS256:
		if cfg.Secret == "" {
			return nil, fmt.Errorf("config: JWT_SECRET is required for strategy %s", StrategyHS256)
		}
		return token.NewHMACCodec([]byte(cfg.Secret)), nil

	case StrategyRS256:
		if cfg.PublicKeyPath == "" {
			return nil, fmt.Errorf("config: JWT_PUBLIC_KEY_PATH is required for strategy %s", StrategyRS256)
		}
		publicPEM, err := os.ReadFile(cfg.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("config: read public key: %w", err)
		}
		public, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
		if err != nil {
			return nil, fmt.Errorf("config: parse public key: %w", err)
		}

		if cfg.PrivateKeyPath == "" {
			// Validate-only deployment: this instance never signs.
			return token.NewRSACodec(nil, public)
		}
		privatePEM, err := os.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("config: read private key: %w", err)
		}
		private, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
		if err != nil {
			return nil, fmt.Errorf("config: parse private key: %w", err)
		}
		return token.NewRSACodec(private, public)

	default:
		return nil, fmt.Errorf("config: unknown token strategy %q", cfg.Strategy)
	}
}
