//go:generate mockery --name AvatarRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvatarRepository interface {
	Create(ctx context.Context, tx *gorm.DB, preset *model.AvatarPreset) error
	ListByAccount(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]*model.AvatarPreset, error)
	// Delete はアカウントが所有するプリセットを削除します。該当がなければ model.ErrNotFound
	Delete(ctx context.Context, tx *gorm.DB, accountID, presetID uuid.UUID) error
}

type gormAvatarRepository struct{}

func NewGormAvatarRepository() AvatarRepository {
	return &gormAvatarRepository{}
}

func (r *gormAvatarRepository) Create(ctx context.Context, tx *gorm.DB, preset *model.AvatarPreset) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Create(preset).Error; err != nil {
		logger.Error("Error creating avatar preset in DB", slog.Any("error", err), slog.String("account_id", preset.AccountID.String()))
		return fmt.Errorf("gormAvatarRepository.Create: %w", err)
	}
	return nil
}

func (r *gormAvatarRepository) ListByAccount(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]*model.AvatarPreset, error) {
	logger := middleware.GetLogger(ctx)
	var presets []*model.AvatarPreset

	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&presets).Error
	if err != nil {
		logger.Error("Error listing avatar presets from DB", slog.Any("error", err))
		return nil, fmt.Errorf("gormAvatarRepository.ListByAccount: %w", err)
	}
	return presets, nil
}

func (r *gormAvatarRepository) Delete(ctx context.Context, tx *gorm.DB, accountID, presetID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With(slog.String("preset_id", presetID.String()))

	result := tx.WithContext(ctx).
		Where("preset_id = ? AND account_id = ?", presetID, accountID).
		Delete(&model.AvatarPreset{})
	if result.Error != nil {
		logger.Error("Error deleting avatar preset from DB", slog.Any("error", result.Error))
		return fmt.Errorf("gormAvatarRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Avatar preset not found for deletion")
		return model.ErrNotFound
	}
	return nil
}
