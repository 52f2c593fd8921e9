package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"authd/internal/config"
	"authd/internal/db"
	"authd/internal/redis"
	"authd/internal/user"
)

type infra struct {
	users   user.Store
	redis   *redis.Client
	cleanup func() error
}

// setupInfra wires the backing stores. Without a DATABASE_DSN the
// service keeps users in memory; redis is only dialed when the
// durable session strategy needs it.
func setupInfra(ctx context.Context, cfg config.Config, log zerolog.Logger) (*infra, error) {
	inf := &infra{
		users:   user.NewMemStore(),
		cleanup: func() error { return nil },
	}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, sqlDB); err != nil {
			return nil, err
		}

		inf.users = user.NewPGStore(sqlDB)
		inf.cleanup = sqlDB.Close
		log.Info().Msg("database ready")
	} else {
		log.Info().Msg("no DATABASE_DSN set, using in-memory user store")
	}

	if cfg.AuthType == config.AuthTypeSessionDB && cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		inf.redis = redisClient
		log.Info().Msg("redis ready")
	}

	return inf, nil
}
