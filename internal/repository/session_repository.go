//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
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

// SessionRepository はプレイ記録 (追記のみ) を扱います
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.GameSession) error
	// ListRecent は新しい順に最大 limit 件を返します
	ListRecent(ctx context.Context, db *gorm.DB, accountID uuid.UUID, limit int) ([]*model.GameSession, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.GameSession) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Create(session).Error; err != nil {
		logger.Error("Error creating game session in DB",
			slog.Any("error", err),
			slog.String("account_id", session.AccountID.String()),
			slog.String("game_id", session.GameIdentifier),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", err)
	}
	return nil
}

func (r *gormSessionRepository) ListRecent(ctx context.Context, db *gorm.DB, accountID uuid.UUID, limit int) ([]*model.GameSession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.GameSession

	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("played_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		logger.Error("Error listing game sessions from DB", slog.Any("error", err), slog.String("account_id", accountID.String()))
		return nil, fmt.Errorf("gormSessionRepository.ListRecent: %w", err)
	}
	return sessions, nil
}
