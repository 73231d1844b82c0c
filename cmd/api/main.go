package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/restaurant-platform/auth-service/internal/api"
	"github.com/restaurant-platform/auth-service/internal/core/hash"
	"github.com/restaurant-platform/auth-service/internal/core/ports"
	"github.com/restaurant-platform/auth-service/internal/core/service"
	"github.com/restaurant-platform/auth-service/internal/infrastructure/config"
	mongodb "github.com/restaurant-platform/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/restaurant-platform/auth-service/internal/infrastructure/db/redis"
	"github.com/restaurant-platform/auth-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this is the one bare-stderr exit.
		os.Stderr.WriteString("fatal: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Key material loads once; a missing or unreadable key must stop the
	// process before it serves a single request.
	codec, err := config.NewTokenCodec(cfg.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("token codec initialisation failed")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	var rdb *goredis.Client
	var sessions ports.SessionRepository
	switch cfg.Token.SessionStore {
	case config.SessionStoreMongo:
		sessions = mongodb.NewSessionRepository(db)
	case config.SessionStoreRedis:
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		sessions = redisdb.NewSessionRepository(rdb)
	case config.SessionStoreNone:
		// Stateless deployment: nothing written at login.
	}

	authService := service.NewAuthService(userRepo, sessions, hash.NewBcryptHasher(0), codec, cfg.Token.TTL)
	e := api.NewRouter(authService, db, rdb, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("strategy", cfg.Token.Strategy).
			Str("session_store", cfg.Token.SessionStore).
			Msg("starting auth service")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
