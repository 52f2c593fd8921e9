package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"authd/internal/auth"
	"authd/internal/auth/handler"
	"authd/internal/config"
	"authd/internal/middleware"
	"authd/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config, log zerolog.Logger) (*gin.Engine, func() error, error) {
	inf, err := setupInfra(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	strategy, err := buildStrategy(cfg, inf)
	if err != nil {
		return nil, nil, err
	}

	resetManager := auth.NewResetTokenManager(inf.users)

	cookieOpts := session.CookieOptions{
		Name:     cfg.SessionName,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := handler.NewHandler(strategy, inf.users, resetManager, cookieOpts, log)
	authMiddleware := middleware.NewAuthMiddleware(strategy, cfg.ExcludedPaths)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.GinRequireAuth(authMiddleware))

	authHandler.RegisterRoutes(router)

	log.Info().Str("auth_type", cfg.AuthType).Msg("http routes registered")

	return router, inf.cleanup, nil
}

// buildStrategy selects the authentication strategy from AUTH_TYPE.
// Each layered variant wraps the one it extends.
func buildStrategy(cfg config.Config, inf *infra) (auth.Strategy, error) {
	registry := session.NewRegistry()
	sessionAuth := auth.NewSessionAuth(inf.users, registry, cfg.SessionName)

	switch cfg.AuthType {
	case config.AuthTypeNone:
		return auth.NoAuth{}, nil
	case config.AuthTypeBasic:
		return auth.NewBasicAuth(inf.users), nil
	case config.AuthTypeSession:
		return sessionAuth, nil
	case config.AuthTypeSessionExp:
		return auth.NewSessionExpAuth(sessionAuth, cfg.SessionDuration), nil
	case config.AuthTypeSessionDB:
		expAuth := auth.NewSessionExpAuth(sessionAuth, cfg.SessionDuration)
		var records session.RecordStore = session.NewMemRecordStore()
		if inf.redis != nil {
			records = session.NewRedisRecordStore(inf.redis.Client)
		}
		return auth.NewSessionDBAuth(expAuth, records), nil
	default:
		return nil, fmt.Errorf("app: unknown AUTH_TYPE %q", cfg.AuthType)
	}
}
