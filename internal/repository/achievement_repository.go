//go:generate mockery --name AchievementRepository --output ./mocks --outpkg mocks --case=underscore
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

type AchievementRepository interface {
	// CreateClaim は受け取り記録を作成します。受け取り済みの場合は model.ErrConflict
	CreateClaim(ctx context.Context, tx *gorm.DB, claim *model.AchievementClaim) error
	ClaimExists(ctx context.Context, db *gorm.DB, accountID uuid.UUID, achievementID string) (bool, error)
	ListClaims(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]*model.AchievementClaim, error)
}

type gormAchievementRepository struct{}

func NewGormAchievementRepository() AchievementRepository {
	return &gormAchievementRepository{}
}

func (r *gormAchievementRepository) CreateClaim(ctx context.Context, tx *gorm.DB, claim *model.AchievementClaim) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Create(claim).Error; err != nil {
		if isDuplicateKeyError(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating achievement claim in DB",
			slog.Any("error", err),
			slog.String("achievement_id", claim.AchievementID),
		)
		return fmt.Errorf("gormAchievementRepository.CreateClaim: %w", err)
	}
	return nil
}

func (r *gormAchievementRepository) ClaimExists(ctx context.Context, db *gorm.DB, accountID uuid.UUID, achievementID string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	err := db.WithContext(ctx).Model(&model.AchievementClaim{}).
		Where("account_id = ? AND achievement_id = ?", accountID, achievementID).
		Count(&count).Error
	if err != nil {
		logger.Error("Error checking achievement claim in DB", slog.Any("error", err))
		return false, fmt.Errorf("gormAchievementRepository.ClaimExists: %w", err)
	}
	return count > 0, nil
}

func (r *gormAchievementRepository) ListClaims(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]*model.AchievementClaim, error) {
	logger := middleware.GetLogger(ctx)
	var claims []*model.AchievementClaim

	if err := db.WithContext(ctx).Where("account_id = ?", accountID).Find(&claims).Error; err != nil {
		logger.Error("Error listing achievement claims from DB", slog.Any("error", err))
		return nil, fmt.Errorf("gormAchievementRepository.ListClaims: %w", err)
	}
	return claims, nil
}
