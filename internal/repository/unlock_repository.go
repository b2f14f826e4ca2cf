//go:generate mockery --name UnlockRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnlockRepository interface {
	// Create は所有レコードを作成します。同じアイテムを既に所有している場合は model.ErrConflict
	Create(ctx context.Context, tx *gorm.DB, unlock *model.UnlockRecord) error
	Exists(ctx context.Context, db *gorm.DB, accountID uuid.UUID, item *model.CatalogItem) (bool, error)
	CountByMethod(ctx context.Context, db *gorm.DB, accountID uuid.UUID, method model.UnlockMethod) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, unlockID uuid.UUID) (*model.UnlockRecord, error)
	ListByAccount(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]*model.UnlockRecord, error)
	// UnequipSlot は (account, style, category) の装備をすべて外します
	UnequipSlot(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, style, category string) error
	SetEquipped(ctx context.Context, tx *gorm.DB, unlockID uuid.UUID, equipped bool) error
}

type gormUnlockRepository struct{}

func NewGormUnlockRepository() UnlockRepository {
	return &gormUnlockRepository{}
}

func (r *gormUnlockRepository) Create(ctx context.Context, tx *gorm.DB, unlock *model.UnlockRecord) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Create(unlock).Error; err != nil {
		if isDuplicateKeyError(err) {
			logger.Info("Unlock record already exists",
				slog.String("account_id", unlock.AccountID.String()),
				slog.String("category", unlock.Category),
				slog.String("value", unlock.Value),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating unlock record in DB", slog.Any("error", err))
		return fmt.Errorf("gormUnlockRepository.Create: %w", err)
	}
	return nil
}

func (r *gormUnlockRepository) Exists(ctx context.Context, db *gorm.DB, accountID uuid.UUID, item *model.CatalogItem) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	err := db.WithContext(ctx).Model(&model.UnlockRecord{}).
		Where("account_id = ? AND style = ? AND category = ? AND value = ?", accountID, item.Style, item.Category, item.Value).
		Count(&count).Error
	if err != nil {
		logger.Error("Error checking unlock record in DB", slog.Any("error", err))
		return false, fmt.Errorf("gormUnlockRepository.Exists: %w", err)
	}
	return count > 0, nil
}

func (r *gormUnlockRepository) CountByMethod(ctx context.Context, db *gorm.DB, accountID uuid.UUID, method model.UnlockMethod) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	err := db.WithContext(ctx).Model(&model.UnlockRecord{}).
		Where("account_id = ? AND unlock_method = ?", accountID, method).
		Count(&count).Error
	if err != nil {
		logger.Error("Error counting unlock records in DB", slog.Any("error", err))
		return 0, fmt.Errorf("gormUnlockRepository.CountByMethod: %w", err)
	}
	return count, nil
}

func (r *gormUnlockRepository) FindByID(ctx context.Context, db *gorm.DB, unlockID uuid.UUID) (*model.UnlockRecord, error) {
	logger := middleware.GetLogger(ctx)
	var unlock model.UnlockRecord

	if err := db.WithContext(ctx).Where("unlock_id = ?", unlockID).First(&unlock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding unlock record in DB", slog.Any("error", err), slog.String("unlock_id", unlockID.String()))
		return nil, fmt.Errorf("gormUnlockRepository.FindByID: %w", err)
	}
	return &unlock, nil
}

func (r *gormUnlockRepository) ListByAccount(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]*model.UnlockRecord, error) {
	logger := middleware.GetLogger(ctx)
	var unlocks []*model.UnlockRecord

	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("category ASC, unlocked_at ASC").
		Find(&unlocks).Error
	if err != nil {
		logger.Error("Error listing unlock records from DB", slog.Any("error", err), slog.String("account_id", accountID.String()))
		return nil, fmt.Errorf("gormUnlockRepository.ListByAccount: %w", err)
	}
	return unlocks, nil
}

func (r *gormUnlockRepository) UnequipSlot(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, style, category string) error {
	logger := middleware.GetLogger(ctx)

	err := tx.WithContext(ctx).Model(&model.UnlockRecord{}).
		Where("account_id = ? AND style = ? AND category = ? AND is_equipped = ?", accountID, style, category, true).
		Update("is_equipped", false).Error
	if err != nil {
		logger.Error("Error unequipping slot in DB", slog.Any("error", err), slog.String("category", category))
		return fmt.Errorf("gormUnlockRepository.UnequipSlot: %w", err)
	}
	return nil
}

func (r *gormUnlockRepository) SetEquipped(ctx context.Context, tx *gorm.DB, unlockID uuid.UUID, equipped bool) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(&model.UnlockRecord{}).
		Where("unlock_id = ?", unlockID).
		Update("is_equipped", equipped)
	if result.Error != nil {
		logger.Error("Error setting equipped flag in DB", slog.Any("error", result.Error), slog.String("unlock_id", unlockID.String()))
		return fmt.Errorf("gormUnlockRepository.SetEquipped: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
