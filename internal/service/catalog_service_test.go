package service_test

import (
	"context"
	"testing"

	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/repository/mocks"
	"go_5_pixel_ledger/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_catalogService_PurchaseItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		itemValue   string
		itemID      uint
		ledger      map[string]interface{}
		purchased   []string
		unowned     []string
		wantCode    string
		wantErr     error
		wantBalance int
	}{
		{
			name:        "正常系: 購入できる",
			itemValue:   "LongHairCurly",
			ledger:      map[string]interface{}{"level": 3, "experience": 200},
			wantBalance: 50,
		},
		{
			name:        "正常系: 残高ちょうどでも購入できる",
			itemValue:   "LongHairCurly",
			ledger:      map[string]interface{}{"level": 3, "experience": 200, "coin_balance": 50},
			wantBalance: 0,
		},
		{
			name:        "異常系: コインが足りない",
			itemValue:   "LongHairCurly",
			ledger:      map[string]interface{}{"level": 3, "experience": 200, "coin_balance": 40},
			wantCode:    "INSUFFICIENT_FUNDS",
			wantErr:     model.ErrInsufficientFunds,
			wantBalance: 40,
		},
		{
			name:        "異常系: レベルが足りない",
			itemValue:   "Sunglasses",
			ledger:      map[string]interface{}{"level": 3, "experience": 200},
			wantCode:    "LEVEL_TOO_LOW",
			wantErr:     model.ErrLevelTooLow,
			wantBalance: 100,
		},
		{
			name:        "異常系: 所有済み",
			itemValue:   "Blonde",
			ledger:      map[string]interface{}{"level": 2, "experience": 100},
			purchased:   []string{"Blonde"},
			wantCode:    "ALREADY_OWNED",
			wantErr:     model.ErrAlreadyOwned,
			wantBalance: 70,
		},
		{
			name:        "異常系: 所有済みの既定アイテムは所有済みとして扱う",
			itemValue:   "Hoodie",
			wantCode:    "ALREADY_OWNED",
			wantErr:     model.ErrAlreadyOwned,
			wantBalance: 100,
		},
		{
			name:        "異常系: 未所有の既定アイテムは購入できない",
			itemValue:   "Hoodie",
			unowned:     []string{"Hoodie"},
			wantCode:    "NOT_PURCHASABLE",
			wantErr:     model.ErrNotPurchasable,
			wantBalance: 100,
		},
		{
			name:        "異常系: 実績報酬アイテムは購入できない",
			itemValue:   "Kurt",
			wantCode:    "NOT_PURCHASABLE",
			wantErr:     model.ErrNotPurchasable,
			wantBalance: 100,
		},
		{
			name:        "異常系: 存在しないアイテム",
			itemID:      9999,
			wantCode:    "ITEM_NOT_FOUND",
			wantErr:     model.ErrNotFound,
			wantBalance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newLedgerEnv(t)
			a := env.register(t, "shopper")
			if tt.ledger != nil {
				env.setLedger(t, a.AccountID, tt.ledger)
			}
			for _, v := range tt.purchased {
				_, err := env.catalogSvc.PurchaseItem(ctx, a.AccountID, env.item(t, v).ItemID)
				require.NoError(t, err)
			}
			for _, v := range tt.unowned {
				require.NoError(t, env.db.Where("account_id = ? AND value = ?", a.AccountID, v).Delete(&model.UnlockRecord{}).Error)
			}
			itemID := tt.itemID
			if tt.itemValue != "" {
				itemID = env.item(t, tt.itemValue).ItemID
			}
			unlocksBefore := env.count(t, &model.UnlockRecord{}, a.AccountID)

			resp, err := env.catalogSvc.PurchaseItem(ctx, a.AccountID, itemID)

			if tt.wantCode != "" {
				assert.Nil(t, resp)
				assertAppErrorCode(t, err, tt.wantCode)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, unlocksBefore, env.count(t, &model.UnlockRecord{}, a.AccountID), "失敗時は所有レコードを作らない")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantBalance, resp.CoinBalance)
				assert.Equal(t, model.UnlockMethodPurchase, resp.Unlock.UnlockMethod)
				assert.False(t, resp.Unlock.IsEquipped)
				assert.Equal(t, unlocksBefore+1, env.count(t, &model.UnlockRecord{}, a.AccountID))
				assert.Equal(t, int(unlocksBefore)+1, env.progress(t, a.AccountID).ItemsUnlocked)
			}
			assert.Equal(t, tt.wantBalance, env.account(t, a.AccountID).CoinBalance)
		})
	}
}

func Test_catalogService_PurchaseItem_Twice(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t)
	a := env.register(t, "double")
	env.setLedger(t, a.AccountID, map[string]interface{}{"level": 2, "experience": 100})
	item := env.item(t, "GraphicShirt")

	_, err := env.catalogSvc.PurchaseItem(ctx, a.AccountID, item.ItemID)
	require.NoError(t, err)
	_, err = env.catalogSvc.PurchaseItem(ctx, a.AccountID, item.ItemID)
	assertAppErrorCode(t, err, "ALREADY_OWNED")

	var n int64
	require.NoError(t, env.db.Model(&model.UnlockRecord{}).Where("account_id = ? AND value = ?", a.AccountID, item.Value).Count(&n).Error)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 60, env.account(t, a.AccountID).CoinBalance, "引き落としは1回だけ")
}

func Test_catalogService_EquipItem(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t)
	a := env.register(t, "stylist")
	other := env.register(t, "stranger")
	env.setLedger(t, a.AccountID, map[string]interface{}{"level": 3, "experience": 200})

	bought, err := env.catalogSvc.PurchaseItem(ctx, a.AccountID, env.item(t, "LongHairCurly").ItemID)
	require.NoError(t, err)

	equipped, err := env.catalogSvc.EquipItem(ctx, a.AccountID, bought.Unlock.UnlockID)
	require.NoError(t, err)
	assert.True(t, equipped.IsEquipped)

	// 同じスロット (topType) で装備中なのは1つだけ
	var topTypes []model.UnlockRecord
	require.NoError(t, env.db.Where("account_id = ? AND category = ?", a.AccountID, "topType").Find(&topTypes).Error)
	require.Len(t, topTypes, 3)
	for _, u := range topTypes {
		assert.Equal(t, u.Value == "LongHairCurly", u.IsEquipped, u.Value)
	}

	// 他のスロットの装備は外れない
	var hair model.UnlockRecord
	require.NoError(t, env.db.Where("account_id = ? AND category = ?", a.AccountID, "hairColor").First(&hair).Error)
	assert.True(t, hair.IsEquipped)

	t.Run("異常系: 他人の所有レコードは装備できない", func(t *testing.T) {
		_, err := env.catalogSvc.EquipItem(ctx, other.AccountID, bought.Unlock.UnlockID)
		assertAppErrorCode(t, err, "NOT_OWNED")
		assert.ErrorIs(t, err, model.ErrNotOwned)
	})

	t.Run("異常系: 存在しない所有レコード", func(t *testing.T) {
		_, err := env.catalogSvc.EquipItem(ctx, a.AccountID, uuid.New())
		assertAppErrorCode(t, err, "NOT_OWNED")
	})
}

func Test_catalogService_GrantDefaultItems(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t)
	a := env.register(t, "newcomer")

	// 登録時に付与済み
	assert.Equal(t, int64(5), env.count(t, &model.UnlockRecord{}, a.AccountID))
	assert.Equal(t, 5, env.progress(t, a.AccountID).ItemsUnlocked)

	var equipped []model.UnlockRecord
	require.NoError(t, env.db.Where("account_id = ? AND is_equipped = ?", a.AccountID, true).Find(&equipped).Error)
	assert.Len(t, equipped, 4, "スロットごとに1つだけ装備")
	for _, u := range equipped {
		if u.Category == "topType" {
			assert.Equal(t, "ShortHairShortFlat", u.Value)
		}
	}

	// 2回目は何もしない
	var granted int
	err := env.db.Transaction(func(tx *gorm.DB) error {
		var err error
		granted, err = env.catalogSvc.GrantDefaultItems(ctx, tx, a.AccountID)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 0, granted)
	assert.Equal(t, int64(5), env.count(t, &model.UnlockRecord{}, a.AccountID))
}

func Test_catalogService_ListCatalog(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t)
	a := env.register(t, "browser")

	items, err := env.catalogSvc.ListCatalog(ctx, a.AccountID)
	require.NoError(t, err)
	require.Len(t, items, len(model.DefaultCatalog()))

	byValue := make(map[string]*model.CatalogItemResponse)
	for _, it := range items {
		byValue[it.Value] = it
	}
	assert.True(t, byValue["Hoodie"].Owned)
	assert.False(t, byValue["Hoodie"].LevelLocked)
	assert.False(t, byValue["Sunglasses"].Owned)
	assert.True(t, byValue["Sunglasses"].LevelLocked)

	unlocked, err := env.catalogSvc.ListUnlocked(ctx, a.AccountID)
	require.NoError(t, err)
	assert.Equal(t, 5, unlocked.Total)
	assert.Len(t, unlocked.ByCategory["topType"], 2)
}

// stubCatalogCache は呼び出し回数を数えるだけのキャッシュ
type stubCatalogCache struct {
	items []*model.CatalogItem
	sets  int
}

func (c *stubCatalogCache) Get(ctx context.Context) ([]*model.CatalogItem, bool, error) {
	return c.items, c.items != nil, nil
}

func (c *stubCatalogCache) Set(ctx context.Context, items []*model.CatalogItem) error {
	c.items = items
	c.sets++
	return nil
}

func Test_catalogService_ListCatalog_Cache(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t)
	a := env.register(t, "cached")

	catalog, err := env.catalogRepo.List(ctx, env.db)
	require.NoError(t, err)

	// 1回目だけDBから読む
	mockCatalogRepo := mocks.NewCatalogRepository(t)
	mockCatalogRepo.On("List", mock.Anything, mock.Anything).Return(catalog, nil).Once()
	cache := &stubCatalogCache{}
	svc := service.NewCatalogService(env.db, env.accountRepo, env.progressRepo, mockCatalogRepo, env.unlockRepo, cache, env.clock)

	for i := 0; i < 2; i++ {
		items, err := svc.ListCatalog(ctx, a.AccountID)
		require.NoError(t, err)
		assert.Len(t, items, len(catalog))
	}
	assert.Equal(t, 1, cache.sets)
}
