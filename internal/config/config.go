package config

import (
	"github.com/caarlos0/env/v11"
)

// AuthType values accepted via the AUTH_TYPE environment variable.
const (
	AuthTypeNone       = "noauth"
	AuthTypeBasic      = "basic_auth"
	AuthTypeSession    = "session_auth"
	AuthTypeSessionExp = "session_exp_auth"
	AuthTypeSessionDB  = "session_db_auth"
)

type Config struct {
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	AuthType string `env:"AUTH_TYPE" envDefault:"session_auth"`

	// SessionName is the name of the cookie carrying the session id.
	SessionName string `env:"SESSION_NAME" envDefault:"_my_session_id"`

	// SessionDuration is the session lifetime in seconds.
	// Zero or negative disables expiration entirely.
	SessionDuration int `env:"SESSION_DURATION" envDefault:"0"`

	// ExcludedPaths are exempt from authentication. A trailing "*"
	// turns an entry into a prefix pattern.
	ExcludedPaths []string `env:"AUTH_EXCLUDED_PATHS" envSeparator:"," envDefault:"/api/v1/status/,/api/v1/users/,/api/v1/auth_session/login/,/api/v1/reset_password/"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// DatabaseDSN selects the postgres user store. When empty the
	// service falls back to the in-memory store.
	DatabaseDSN string `env:"DATABASE_DSN"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
