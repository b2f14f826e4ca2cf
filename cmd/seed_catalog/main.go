package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"go_5_pixel_ledger/internal/config"
	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/repository"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	configDir := "../../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}
	if err := config.LoadConfig(configDir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = middleware.WithLogger(ctx, logger)

	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := repository.AutoMigrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	items := model.DefaultCatalog()
	inserted, err := repository.NewGormCatalogRepository().Seed(ctx, db, items)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	fmt.Printf("Catalog seeded: %d inserted, %d already present\n", inserted, len(items)-inserted)

	// 追加があった場合は API のキャッシュを破棄する
	if inserted == 0 {
		return
	}
	redisClient, err := repository.NewRedisClient(ctx, config.Cfg.Redis, logger)
	if err != nil {
		slog.Warn("Could not connect to redis; catalog cache will expire by TTL", slog.Any("error", err))
		return
	}
	if redisClient == nil {
		return
	}
	defer redisClient.Close()
	if err := repository.NewCatalogCache(redisClient, config.Cfg.Redis.CatalogTTL).Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate catalog cache", slog.Any("error", err))
		return
	}
	fmt.Println("Catalog cache invalidated")
}
