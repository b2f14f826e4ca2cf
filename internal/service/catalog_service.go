//go:generate mockery --name CatalogService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/progression"
	"go_5_pixel_ledger/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	ListCatalog(ctx context.Context, accountID uuid.UUID) ([]*model.CatalogItemResponse, error)
	PurchaseItem(ctx context.Context, accountID uuid.UUID, itemID uint) (*model.PurchaseResponse, error)
	EquipItem(ctx context.Context, accountID uuid.UUID, unlockID uuid.UUID) (*model.UnlockRecord, error)
	ListUnlocked(ctx context.Context, accountID uuid.UUID) (*model.UnlockedItemsResponse, error)
	GrantDefaultItems(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (int, error)
}

// CatalogCacher は静的カタログのキャッシュ
type CatalogCacher interface {
	Get(ctx context.Context) ([]*model.CatalogItem, bool, error)
	Set(ctx context.Context, items []*model.CatalogItem) error
}

type catalogService struct {
	db           *gorm.DB
	accountRepo  repository.AccountRepository
	progressRepo repository.ProgressRepository
	catalogRepo  repository.CatalogRepository
	unlockRepo   repository.UnlockRepository
	cache        CatalogCacher
	clock        progression.Clock
}

// NewCatalogService は CatalogService を生成します。cache が nil の場合は毎回DBから読む
func NewCatalogService(
	db *gorm.DB,
	accountRepo repository.AccountRepository,
	progressRepo repository.ProgressRepository,
	catalogRepo repository.CatalogRepository,
	unlockRepo repository.UnlockRepository,
	cache CatalogCacher,
	clock progression.Clock,
) CatalogService {
	return &catalogService{
		db:           db,
		accountRepo:  accountRepo,
		progressRepo: progressRepo,
		catalogRepo:  catalogRepo,
		unlockRepo:   unlockRepo,
		cache:        cache,
		clock:        clock,
	}
}

func slotKey(style, category, value string) string {
	return style + "|" + category + "|" + value
}

// catalogItems はキャッシュ、なければDBからカタログを返します。キャッシュの障害はDBで代替する
func (s *catalogService) catalogItems(ctx context.Context) ([]*model.CatalogItem, error) {
	logger := middleware.GetLogger(ctx)

	if s.cache != nil {
		items, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.Warn("Catalog cache read failed, falling back to DB", slog.Any("error", err))
		} else if ok {
			return items, nil
		}
	}

	items, err := s.catalogRepo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, items); err != nil {
			logger.Warn("Catalog cache write failed", slog.Any("error", err))
		}
	}
	return items, nil
}

// ListCatalog はカタログの全アイテムに、所有済みかどうかとレベル不足かどうかを付けて返します
func (s *catalogService) ListCatalog(ctx context.Context, accountID uuid.UUID) ([]*model.CatalogItemResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, s.db, accountID)
	if err != nil {
		return nil, lookupError(err)
	}
	items, err := s.catalogItems(ctx)
	if err != nil {
		return nil, toAppError(err)
	}
	unlocks, err := s.unlockRepo.ListByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, toAppError(err)
	}

	owned := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		owned[slotKey(u.Style, u.Category, u.Value)] = true
	}

	resp := make([]*model.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, &model.CatalogItemResponse{
			CatalogItem: *item,
			Owned:       owned[slotKey(item.Style, item.Category, item.Value)],
			LevelLocked: account.Level < item.UnlockLevel,
		})
	}
	return resp, nil
}

// PurchaseItem はレベル・所有状況・購入可否・残高を順に確認し、コインの引き落としと所有レコードの作成を1トランザクションで行います。
func (s *catalogService) PurchaseItem(ctx context.Context, accountID uuid.UUID, itemID uint) (*model.PurchaseResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.Uint64("item_id", uint64(itemID)))

	item, err := s.catalogRepo.FindByID(ctx, s.db, itemID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("ITEM_NOT_FOUND", "アイテムが見つかりません。", "item_id", err)
		}
		return nil, toAppError(err)
	}

	var resp *model.PurchaseResponse
	err = runInTx(ctx, s.db, func(tx *gorm.DB) error {
		account, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		if account.Level < item.UnlockLevel {
			return model.ErrLevelTooLow
		}
		owned, err := s.unlockRepo.Exists(ctx, tx, accountID, item)
		if err != nil {
			return err
		}
		if owned {
			return model.ErrAlreadyOwned
		}
		if !item.Purchasable() {
			return model.ErrNotPurchasable
		}
		if err := progression.DebitCoins(account, item.UnlockCost); err != nil {
			return err
		}

		unlock := model.NewUnlockRecord(accountID, item, model.UnlockMethodPurchase, s.clock.Now())
		if err := s.unlockRepo.Create(ctx, tx, unlock); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.ErrAlreadyOwned
			}
			return err
		}

		pc, err := s.progressRepo.GetOrCreate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		pc.ItemsUnlocked++

		if err := s.accountRepo.UpdateLedger(ctx, tx, account); err != nil {
			return err
		}
		if err := s.progressRepo.Update(ctx, tx, pc); err != nil {
			return err
		}

		resp = &model.PurchaseResponse{Unlock: unlock, CoinBalance: account.CoinBalance}
		return nil
	})
	if err != nil {
		return nil, lookupError(err)
	}

	logger.Info("Item purchased", slog.Int("cost", item.UnlockCost), slog.Int("coin_balance", resp.CoinBalance))
	return resp, nil
}

// EquipItem は所有アイテムを装備します。同じスロット (style, category) の他の装備は外す
func (s *catalogService) EquipItem(ctx context.Context, accountID uuid.UUID, unlockID uuid.UUID) (*model.UnlockRecord, error) {
	var unlock *model.UnlockRecord
	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID); err != nil {
			return err
		}

		var err error
		unlock, err = s.unlockRepo.FindByID(ctx, tx, unlockID)
		if errors.Is(err, model.ErrNotFound) || (err == nil && unlock.AccountID != accountID) {
			return model.ErrNotOwned
		}
		if err != nil {
			return err
		}

		if err := s.unlockRepo.UnequipSlot(ctx, tx, accountID, unlock.Style, unlock.Category); err != nil {
			return err
		}
		if err := s.unlockRepo.SetEquipped(ctx, tx, unlockID, true); err != nil {
			return err
		}
		unlock.IsEquipped = true
		return nil
	})
	if err != nil {
		return nil, lookupError(err)
	}
	return unlock, nil
}

// GrantDefaultItems は既定アイテムをすべて付与し、スロットごとに最初の1つを装備します。
// 既に既定アイテムを持っている場合は何もしない。呼び出し側のトランザクション内で実行する
func (s *catalogService) GrantDefaultItems(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)

	existing, err := s.unlockRepo.CountByMethod(ctx, tx, accountID, model.UnlockMethodDefault)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		logger.Info("Default items already granted, skipping", slog.Int64("existing", existing))
		return 0, nil
	}

	defaults, err := s.catalogRepo.FindDefaults(ctx, tx)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	equippedSlots := make(map[string]bool)
	for _, item := range defaults {
		unlock := model.NewUnlockRecord(accountID, item, model.UnlockMethodDefault, now)
		slot := item.Style + "|" + item.Category
		if !equippedSlots[slot] {
			unlock.IsEquipped = true
			equippedSlots[slot] = true
		}
		if err := s.unlockRepo.Create(ctx, tx, unlock); err != nil {
			return 0, err
		}
	}

	pc, err := s.progressRepo.GetOrCreate(ctx, tx, accountID)
	if err != nil {
		return 0, err
	}
	pc.ItemsUnlocked = len(defaults)
	if err := s.progressRepo.Update(ctx, tx, pc); err != nil {
		return 0, err
	}
	return len(defaults), nil
}

// ListUnlocked は所有アイテムをカテゴリごとにまとめて返します
func (s *catalogService) ListUnlocked(ctx context.Context, accountID uuid.UUID) (*model.UnlockedItemsResponse, error) {
	unlocks, err := s.unlockRepo.ListByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, toAppError(err)
	}

	byCategory := make(map[string][]*model.UnlockRecord)
	for _, u := range unlocks {
		byCategory[u.Category] = append(byCategory[u.Category], u)
	}
	return &model.UnlockedItemsResponse{Total: len(unlocks), ByCategory: byCategory}, nil
}
