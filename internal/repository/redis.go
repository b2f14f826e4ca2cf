package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go_5_pixel_ledger/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient は Redis クライアントを作成し、疎通を確認します。
// redis.addr が空の場合は nil を返す (キャッシュ・失効リスト・流量制限は無効)。
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	if cfg.Addr == "" {
		logger.Info("Redis address not configured; cache, token revocation and rate limiting are disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("repository.NewRedisClient: %w", err)
	}

	logger.Info("Redis connection established", slog.String("addr", cfg.Addr))
	return client, nil
}
