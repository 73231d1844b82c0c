package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Token signing strategies.
const (
	StrategyHS256 = "hs256"
	StrategyRS256 = "rs256"
)

// Session store backends.
const (
	SessionStoreMongo = "mongo"
	SessionStoreRedis = "redis"
	SessionStoreNone  = "none"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Token TokenConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type TokenConfig struct {
	// Strategy selects the codec: hs256 (shared secret, server-side session
	// rows) or rs256 (keypair, stateless).
	Strategy string        `env:"TOKEN_STRATEGY, default=hs256"`
	TTL      time.Duration `env:"TOKEN_TTL,      default=60m"`

	// Secret is required under hs256.
	Secret string `env:"JWT_SECRET"`

	// Key file paths, required under rs256. A validate-only deployment may
	// omit the private key.
	PrivateKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`
	PublicKeyPath  string `env:"JWT_PUBLIC_KEY_PATH"`

	// SessionStore selects where login writes session records:
	// mongo, redis, or none.
	SessionStore string `env:"SESSION_STORE, default=mongo"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=restaurant_auth"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	switch cfg.Token.Strategy {
	case StrategyHS256, StrategyRS256:
	default:
		return nil, fmt.Errorf("config: unknown token strategy %q", cfg.Token.Strategy)
	}
	switch cfg.Token.SessionStore {
	case SessionStoreMongo, SessionStoreRedis, SessionStoreNone:
	default:
		return nil, fmt.Errorf("config: unknown session store %q", cfg.Token.SessionStore)
	}
	return &cfg, nil
}
