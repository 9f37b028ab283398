package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gojournal/internal/config"
)

// NewRedisClient connects and pings. Callers decide whether a failure is fatal.
func NewRedisClient(conf config.RedisConfig, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", conf.Address, conf.Port),
		Password:    conf.Password,
		Username:    conf.Username,
		DB:          conf.Database,
		DialTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	log.Info("redis client ready", zap.String("addr", client.Options().Addr))
	return client, nil
}
