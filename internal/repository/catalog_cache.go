package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go_5_pixel_ledger/internal/model"

	"github.com/redis/go-redis/v9"
)

const catalogCacheKey = "catalog:items"

// CatalogCache は静的カタログを JSON で Redis に保持します。
// クライアントが nil の場合は常にミスとして振る舞う。
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// Get はキャッシュ済みのカタログを返します。未キャッシュなら ok=false
func (c *CatalogCache) Get(ctx context.Context) ([]*model.CatalogItem, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	data, err := c.client.Get(ctx, catalogCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("CatalogCache.Get: %w", err)
	}

	var items []*model.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("CatalogCache.Get: %w", err)
	}
	return items, true, nil
}

func (c *CatalogCache) Set(ctx context.Context, items []*model.CatalogItem) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("CatalogCache.Set: %w", err)
	}
	if err := c.client.Set(ctx, catalogCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("CatalogCache.Set: %w", err)
	}
	return nil
}

// Invalidate はカタログのキャッシュを破棄します (シード後に呼ぶ)
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, catalogCacheKey).Err(); err != nil {
		return fmt.Errorf("CatalogCache.Invalidate: %w", err)
	}
	return nil
}
