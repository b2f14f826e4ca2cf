//go:generate mockery --name AccountRepository --output ./mocks --outpkg mocks --case=underscore
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
	"gorm.io/gorm/clause"
)

type AccountRepository interface {
	Create(ctx context.Context, db *gorm.DB, account *model.Account) error
	FindByID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*model.Account, error)
	// FindByIDForUpdate は行ロック (SELECT ... FOR UPDATE) を取って取得します。トランザクション内で使うこと
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (*model.Account, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Account, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Account, error)
	// UpdateLedger はレベル・経験値・コイン・連続日数のみを書き戻します
	UpdateLedger(ctx context.Context, tx *gorm.DB, account *model.Account) error
	Delete(ctx context.Context, db *gorm.DB, accountID uuid.UUID) error
}

type gormAccountRepository struct{}

func NewGormAccountRepository() AccountRepository {
	return &gormAccountRepository{}
}

var ledgerColumns = []string{"level", "experience", "coin_balance", "streak_length", "last_active_date", "updated_at"}

func (r *gormAccountRepository) Create(ctx context.Context, db *gorm.DB, account *model.Account) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Create(account).Error; err != nil {
		if isDuplicateKeyError(err) {
			logger.Warn("Duplicate key error on create account",
				slog.Any("error", err),
				slog.String("name", account.Name),
				slog.String("email", account.Email),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating account in DB", slog.Any("error", err), slog.String("name", account.Name))
		return fmt.Errorf("gormAccountRepository.Create: %w", err)
	}
	return nil
}

func (r *gormAccountRepository) FindByID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*model.Account, error) {
	return r.findOne(ctx, db.WithContext(ctx), "FindByID", "account_id = ?", accountID)
}

func (r *gormAccountRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (*model.Account, error) {
	return r.findOne(ctx, tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "FindByIDForUpdate", "account_id = ?", accountID)
}

func (r *gormAccountRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Account, error) {
	return r.findOne(ctx, db.WithContext(ctx), "FindByEmail", "email = ?", email)
}

func (r *gormAccountRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Account, error) {
	return r.findOne(ctx, db.WithContext(ctx), "FindByName", "name = ?", name)
}

func (r *gormAccountRepository) findOne(ctx context.Context, q *gorm.DB, method string, query string, arg interface{}) (*model.Account, error) {
	logger := middleware.GetLogger(ctx)
	var account model.Account

	if err := q.Where(query, arg).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("Account not found", slog.String("method", method))
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding account in DB", slog.String("method", method), slog.Any("error", err))
		return nil, fmt.Errorf("gormAccountRepository.%s: %w", method, err)
	}
	return &account, nil
}

func (r *gormAccountRepository) UpdateLedger(ctx context.Context, tx *gorm.DB, account *model.Account) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(account).Select(ledgerColumns).Updates(account)
	if result.Error != nil {
		logger.Error("Error updating account ledger in DB",
			slog.Any("error", result.Error),
			slog.String("account_id", account.AccountID.String()),
		)
		return fmt.Errorf("gormAccountRepository.UpdateLedger: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はアカウントと、それに紐づくすべてのレコードを削除します。
func (r *gormAccountRepository) Delete(ctx context.Context, db *gorm.DB, accountID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Select(clause.Associations).Delete(&model.Account{AccountID: accountID})
	if result.Error != nil {
		logger.Error("Error deleting account in DB",
			slog.Any("error", result.Error),
			slog.String("account_id", accountID.String()),
		)
		return fmt.Errorf("gormAccountRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
