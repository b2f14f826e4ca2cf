package service

import (
	"context"
	"fmt"
	"log/slog"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/repository"

	"gorm.io/gorm"
)

const maxTxAttempts = 3

// runInTx は fn を1つのトランザクションで実行します。
// シリアライズ失敗・デッドロックは最大 maxTxAttempts 回まで再実行し、それでも失敗したら model.ErrTransient を返す。
func runInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	logger := middleware.GetLogger(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.WithContext(ctx).Transaction(fn)
		if err == nil || !repository.IsRetryableError(err) {
			return err
		}
		logger.Warn("Transaction conflict, retrying", slog.Int("attempt", attempt), slog.Any("error", err))
	}
	return fmt.Errorf("%w: %v", model.ErrTransient, err)
}
