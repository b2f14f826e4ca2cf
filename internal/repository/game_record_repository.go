//go:generate mockery --name GameRecordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRecordRepository はアカウント×ゲームの集計を扱います
type GameRecordRepository interface {
	// RecordPlay はプレイ回数・自己ベスト・クリア状態を反映します。レコードがなければ作成する
	RecordPlay(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, gameID string, score int, completed bool, playedAt time.Time) (*model.GameRecord, error)
	Find(ctx context.Context, db *gorm.DB, accountID uuid.UUID, gameID string) (*model.GameRecord, error)
	ListByAccount(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]*model.GameRecord, error)
	// ToggleFavorite はお気に入りを切り替え、切り替え後の状態を返します
	ToggleFavorite(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, gameID string) (bool, error)
}

type gormGameRecordRepository struct{}

func NewGormGameRecordRepository() GameRecordRepository {
	return &gormGameRecordRepository{}
}

// findOrNew は既存レコード、なければ未保存の新規レコードを返します。
func (r *gormGameRecordRepository) findOrNew(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, gameID string) (*model.GameRecord, bool, error) {
	rec, err := r.Find(ctx, tx, accountID, gameID)
	if err == nil {
		return rec, false, nil
	}
	if errors.Is(err, model.ErrNotFound) {
		return &model.GameRecord{AccountID: accountID, GameIdentifier: gameID}, true, nil
	}
	return nil, false, err
}

func (r *gormGameRecordRepository) RecordPlay(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, gameID string, score int, completed bool, playedAt time.Time) (*model.GameRecord, error) {
	logger := middleware.GetLogger(ctx)

	rec, _, err := r.findOrNew(ctx, tx, accountID, gameID)
	if err != nil {
		return nil, err
	}

	rec.TimesPlayed++
	if score > rec.PersonalBest {
		rec.PersonalBest = score
	}
	// 一度クリアしたら戻さない
	rec.Completed = rec.Completed || completed
	rec.LastPlayedAt = &playedAt

	if err := tx.WithContext(ctx).Save(rec).Error; err != nil {
		logger.Error("Error saving game record in DB", slog.Any("error", err), slog.String("game_id", gameID))
		return nil, fmt.Errorf("gormGameRecordRepository.RecordPlay: %w", err)
	}
	return rec, nil
}

func (r *gormGameRecordRepository) Find(ctx context.Context, db *gorm.DB, accountID uuid.UUID, gameID string) (*model.GameRecord, error) {
	logger := middleware.GetLogger(ctx)
	var rec model.GameRecord

	err := db.WithContext(ctx).Where("account_id = ? AND game_identifier = ?", accountID, gameID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding game record in DB", slog.Any("error", err), slog.String("game_id", gameID))
		return nil, fmt.Errorf("gormGameRecordRepository.Find: %w", err)
	}
	return &rec, nil
}

func (r *gormGameRecordRepository) ListByAccount(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]*model.GameRecord, error) {
	logger := middleware.GetLogger(ctx)
	var recs []*model.GameRecord

	if err := db.WithContext(ctx).Where("account_id = ?", accountID).Find(&recs).Error; err != nil {
		logger.Error("Error listing game records from DB", slog.Any("error", err), slog.String("account_id", accountID.String()))
		return nil, fmt.Errorf("gormGameRecordRepository.ListByAccount: %w", err)
	}
	return recs, nil
}

func (r *gormGameRecordRepository) ToggleFavorite(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, gameID string) (bool, error) {
	logger := middleware.GetLogger(ctx)

	rec, _, err := r.findOrNew(ctx, tx, accountID, gameID)
	if err != nil {
		return false, err
	}
	rec.IsFavorite = !rec.IsFavorite

	if err := tx.WithContext(ctx).Save(rec).Error; err != nil {
		logger.Error("Error toggling favorite in DB", slog.Any("error", err), slog.String("game_id", gameID))
		return false, fmt.Errorf("gormGameRecordRepository.ToggleFavorite: %w", err)
	}
	return rec.IsFavorite, nil
}
