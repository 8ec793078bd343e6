package services

import (
	"github.com/jmoiron/sqlx"
	"github.com/lk16/othello-agent/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Services contains the connections to the external services. Services that are not
// configured are nil.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

// InitServices connects to the services that have a URL in the configuration.
func InitServices(cfg *config.Config) (*Services, error) {
	services := &Services{}

	if cfg.PostgresURL != "" {
		postgres, err := InitPostgres(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
		log.Info().Msg("Connected to postgres")
	}

	if cfg.RedisURL != "" {
		redis, err := InitRedis(cfg.RedisURL)
		if err != nil {
			services.Close()
			return nil, err
		}
		services.Redis = redis
		log.Info().Msg("Connected to redis")
	}

	return services, nil
}

// Close closes all open connections.
func (s *Services) Close() {
	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close postgres connection")
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close redis connection")
		}
	}
}
