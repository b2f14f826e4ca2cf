package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogHandler_ListCatalog(t *testing.T) {
	accountID := uuid.New()
	router, s := newTestRouter(t)
	s.catalog.On("ListCatalog", mock.Anything, accountID).Return([]*model.CatalogItemResponse{
		{CatalogItem: model.CatalogItem{ItemID: 1, Style: model.DefaultAvatarStyle, Category: "topType", Value: "ShortHairShortFlat", IsDefault: true}, Owned: true},
		{CatalogItem: model.CatalogItem{ItemID: 6, Style: model.DefaultAvatarStyle, Category: "topType", Value: "LongHairCurly", UnlockLevel: 3, UnlockCost: 50}, LevelLocked: true},
	}, nil).Once()

	rr := sendRequest(t, router, http.MethodGet, "/api/v1/catalog", &accountID, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []*model.CatalogItemResponse
	decodeJSON(t, rr, &resp)
	assert.Len(t, resp, 2)
	assert.True(t, resp[0].Owned)
	assert.True(t, resp[1].LevelLocked)
}

func TestCatalogHandler_PurchaseItem(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMock      func(s *testServices)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 購入結果を返す",
			path: "/api/v1/catalog/7/purchase",
			setupMock: func(s *testServices) {
				s.catalog.On("PurchaseItem", mock.Anything, accountID, uint(7)).Return(&model.PurchaseResponse{
					Unlock:      &model.UnlockRecord{UnlockID: uuid.New(), ItemID: 7, UnlockMethod: model.UnlockMethodPurchase, UnlockedAt: time.Now()},
					CoinBalance: 20,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: item_idが数値でない",
			path:           "/api/v1/catalog/abc/purchase",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name:           "異常系: item_idが0",
			path:           "/api/v1/catalog/0/purchase",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name: "異常系: コイン不足は402",
			path: "/api/v1/catalog/7/purchase",
			setupMock: func(s *testServices) {
				s.catalog.On("PurchaseItem", mock.Anything, accountID, uint(7)).
					Return(nil, model.NewAppError("INSUFFICIENT_FUNDS", "コインが足りません。", "", model.ErrInsufficientFunds)).Once()
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedCode:   "INSUFFICIENT_FUNDS",
		},
		{
			name: "異常系: レベル不足は422",
			path: "/api/v1/catalog/7/purchase",
			setupMock: func(s *testServices) {
				s.catalog.On("PurchaseItem", mock.Anything, accountID, uint(7)).
					Return(nil, model.NewAppError("LEVEL_TOO_LOW", "レベルが足りません。", "", model.ErrLevelTooLow)).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "LEVEL_TOO_LOW",
		},
		{
			name: "異常系: 所持済みは409",
			path: "/api/v1/catalog/7/purchase",
			setupMock: func(s *testServices) {
				s.catalog.On("PurchaseItem", mock.Anything, accountID, uint(7)).
					Return(nil, model.NewAppError("ALREADY_OWNED", "既に所持しています。", "", model.ErrAlreadyOwned)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_OWNED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, s := newTestRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			rr := sendRequest(t, router, http.MethodPost, tt.path, &accountID, nil)

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeErrorCode(t, rr))
				return
			}
			var resp model.PurchaseResponse
			decodeJSON(t, rr, &resp)
			assert.Equal(t, 20, resp.CoinBalance)
			assert.Equal(t, model.UnlockMethodPurchase, resp.Unlock.UnlockMethod)
		})
	}
}

func TestCatalogHandler_Items(t *testing.T) {
	accountID := uuid.New()

	t.Run("正常系: 所持アイテムを返す", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.catalog.On("ListUnlocked", mock.Anything, accountID).Return(&model.UnlockedItemsResponse{
			Total: 1,
			ByCategory: map[string][]*model.UnlockRecord{
				"topType": {{UnlockID: uuid.New(), Category: "topType", Value: "ShortHairShortFlat", IsEquipped: true}},
			},
		}, nil).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/items", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.UnlockedItemsResponse
		decodeJSON(t, rr, &resp)
		assert.Equal(t, 1, resp.Total)
		assert.Len(t, resp.ByCategory["topType"], 1)
	})

	t.Run("正常系: 装備する", func(t *testing.T) {
		router, s := newTestRouter(t)
		unlockID := uuid.New()
		s.catalog.On("EquipItem", mock.Anything, accountID, unlockID).
			Return(&model.UnlockRecord{UnlockID: unlockID, IsEquipped: true}, nil).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/items/"+unlockID.String()+"/equip", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.UnlockRecord
		decodeJSON(t, rr, &resp)
		assert.True(t, resp.IsEquipped)
	})

	t.Run("異常系: unlock_idがUUIDでない", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/items/xyz/equip", &accountID, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_URL_PARAM", decodeErrorCode(t, rr))
	})

	t.Run("異常系: 所持していないアイテムは403", func(t *testing.T) {
		router, s := newTestRouter(t)
		unlockID := uuid.New()
		s.catalog.On("EquipItem", mock.Anything, accountID, unlockID).
			Return(nil, model.NewAppError("NOT_OWNED", "所持していないアイテムです。", "", model.ErrNotOwned)).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/items/"+unlockID.String()+"/equip", &accountID, nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "NOT_OWNED", decodeErrorCode(t, rr))
	})
}
