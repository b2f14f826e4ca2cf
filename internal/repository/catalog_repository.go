//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepository interface {
	List(ctx context.Context, db *gorm.DB) ([]*model.CatalogItem, error)
	FindByID(ctx context.Context, db *gorm.DB, itemID uint) (*model.CatalogItem, error)
	FindDefaults(ctx context.Context, db *gorm.DB) ([]*model.CatalogItem, error)
	// FindRewardsOf は指定した実績の報酬アイテムを返します
	FindRewardsOf(ctx context.Context, db *gorm.DB, achievementID string) ([]*model.CatalogItem, error)
	// Seed は (style, category, value) が未登録のアイテムのみ追加し、追加件数を返します
	Seed(ctx context.Context, db *gorm.DB, items []model.CatalogItem) (int, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) List(ctx context.Context, db *gorm.DB) ([]*model.CatalogItem, error) {
	return r.find(ctx, db.WithContext(ctx), "List")
}

func (r *gormCatalogRepository) FindDefaults(ctx context.Context, db *gorm.DB) ([]*model.CatalogItem, error) {
	return r.find(ctx, db.WithContext(ctx).Where("is_default = ?", true), "FindDefaults")
}

func (r *gormCatalogRepository) FindRewardsOf(ctx context.Context, db *gorm.DB, achievementID string) ([]*model.CatalogItem, error) {
	return r.find(ctx, db.WithContext(ctx).Where("reward_of = ?", achievementID), "FindRewardsOf")
}

func (r *gormCatalogRepository) find(ctx context.Context, q *gorm.DB, method string) ([]*model.CatalogItem, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.CatalogItem

	if err := q.Order("item_id ASC").Find(&items).Error; err != nil {
		logger.Error("Error listing catalog items from DB", slog.String("method", method), slog.Any("error", err))
		return nil, fmt.Errorf("gormCatalogRepository.%s: %w", method, err)
	}
	return items, nil
}

func (r *gormCatalogRepository) FindByID(ctx context.Context, db *gorm.DB, itemID uint) (*model.CatalogItem, error) {
	logger := middleware.GetLogger(ctx)
	var item model.CatalogItem

	if err := db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding catalog item by ID in DB", slog.Any("error", err), slog.Uint64("item_id", uint64(itemID)))
		return nil, fmt.Errorf("gormCatalogRepository.FindByID: %w", err)
	}
	return &item, nil
}

func (r *gormCatalogRepository) Seed(ctx context.Context, db *gorm.DB, items []model.CatalogItem) (int, error) {
	logger := middleware.GetLogger(ctx)
	inserted := 0

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			item := items[i]
			item.ItemID = 0
			// (style, category, value) が既にあれば何もしない
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
			if result.Error != nil {
				return result.Error
			}
			inserted += int(result.RowsAffected)
		}
		return nil
	})
	if err != nil {
		logger.Error("Error seeding catalog", slog.Any("error", err))
		return 0, fmt.Errorf("gormCatalogRepository.Seed: %w", err)
	}

	logger.Info("Catalog seeded", slog.Int("inserted", inserted), slog.Int("total", len(items)))
	return inserted, nil
}
