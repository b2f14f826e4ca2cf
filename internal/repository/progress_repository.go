//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	// GetOrCreate はカウンタを取得し、なければ初期値で作成して返します
	GetOrCreate(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*model.ProgressCounters, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.ProgressCounters) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) GetOrCreate(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*model.ProgressCounters, error) {
	logger := middleware.GetLogger(ctx)

	// 同時に作成された場合でも片方は何もしない
	initial := model.ProgressCounters{AccountID: accountID}
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&initial).Error; err != nil {
		logger.Error("Error creating progress counters in DB",
			slog.Any("error", err),
			slog.String("account_id", accountID.String()),
		)
		return nil, fmt.Errorf("gormProgressRepository.GetOrCreate: %w", err)
	}

	var progress model.ProgressCounters
	if err := db.WithContext(ctx).Where("account_id = ?", accountID).First(&progress).Error; err != nil {
		logger.Error("Error finding progress counters in DB",
			slog.Any("error", err),
			slog.String("account_id", accountID.String()),
		)
		return nil, fmt.Errorf("gormProgressRepository.GetOrCreate: %w", err)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.ProgressCounters) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Save(progress).Error; err != nil {
		logger.Error("Error updating progress counters in DB",
			slog.Any("error", err),
			slog.String("account_id", progress.AccountID.String()),
		)
		return fmt.Errorf("gormProgressRepository.Update: %w", err)
	}
	return nil
}
