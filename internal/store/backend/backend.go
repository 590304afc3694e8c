// Package backend opens the store.Store selected by configuration.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/codr1/designtokens/internal/config"
	"github.com/codr1/designtokens/internal/db"
	"github.com/codr1/designtokens/internal/store"
	"github.com/codr1/designtokens/internal/store/redisstore"
	"github.com/codr1/designtokens/internal/store/sqlstore"
)

const pingTimeout = 5 * time.Second

// Open connects to the configured driver. SQLite databases are created and
// migrated on open; Redis must answer a PING.
func Open(ctx context.Context, cfg config.DatabaseConfig) (store.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		database, err := db.NewFile(cfg.Filename)
		if err != nil {
			return nil, store.Wrap("open sqlite", err)
		}
		log.Info().Str("filename", cfg.Filename).Msg("SQLite store opened")
		return sqlstore.New(database), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, store.Wrap("open redis", fmt.Errorf("ping %s: %w", cfg.Redis.Addr, err))
		}
		log.Info().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("Redis store opened")
		return redisstore.New(client, redisstore.WithPrefix(cfg.Redis.Prefix)), nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}
