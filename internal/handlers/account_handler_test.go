package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountHandler_Register(t *testing.T) {
	validReq := model.RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "password123"}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(s *testServices)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 201で作成したアカウントを返す",
			body: validReq,
			setupMock: func(s *testServices) {
				a := model.NewAccount(validReq.Name, validReq.Email, "hash")
				s.account.On("Register", mock.Anything, &validReq).Return(a, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: ボディが空",
			body:           nil,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: JSONが壊れている",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: メールアドレスの形式が不正",
			body:           model.RegisterRequest{Name: "alice", Email: "not-an-email", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: メールアドレスが重複",
			body: validReq,
			setupMock: func(s *testServices) {
				s.account.On("Register", mock.Anything, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "既に登録されています。", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_EMAIL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, s := newTestRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			rr := sendRequest(t, router, http.MethodPost, "/api/v1/accounts", nil, tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeErrorCode(t, rr))
				return
			}
			var resp model.AccountResponse
			decodeJSON(t, rr, &resp)
			assert.Equal(t, "alice", resp.Name)
			assert.Equal(t, 1, resp.Level)
			assert.NotEqual(t, uuid.Nil, resp.AccountID)
		})
	}
}

func TestAccountHandler_Login(t *testing.T) {
	req := model.LoginRequest{Email: "alice@example.com", Password: "password123"}

	t.Run("正常系: トークンを返す", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.account.On("Login", mock.Anything, &req).
			Return(&model.LoginResponse{AccessToken: "token", ExpiresIn: 900}, nil).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/auth/login", nil, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.LoginResponse
		decodeJSON(t, rr, &resp)
		assert.Equal(t, "token", resp.AccessToken)
		assert.Equal(t, int64(900), resp.ExpiresIn)
	})

	t.Run("異常系: 認証失敗は401", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.account.On("Login", mock.Anything, &req).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/auth/login", nil, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "AUTHENTICATION_FAILED", decodeErrorCode(t, rr))
	})
}

func TestAccountHandler_Me(t *testing.T) {
	accountID := uuid.New()

	t.Run("正常系: 自分の情報を返す", func(t *testing.T) {
		router, s := newTestRouter(t)
		a := &model.Account{AccountID: accountID, Name: "bob", Email: "bob@example.com", Level: 3, Experience: 250, CoinBalance: 200, CreatedAt: time.Now()}
		s.account.On("GetAccount", mock.Anything, accountID).Return(a, nil).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/accounts/me", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.AccountResponse
		decodeJSON(t, rr, &resp)
		assert.Equal(t, accountID, resp.AccountID)
		assert.Equal(t, 3, resp.Level)
		assert.Equal(t, 200, resp.CoinBalance)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("異常系: X-Account-IDヘッダーなしは401", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/accounts/me", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeErrorCode(t, rr))
	})

	t.Run("異常系: アカウントが存在しない", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.account.On("GetAccount", mock.Anything, accountID).
			Return(nil, model.NewAppError("ACCOUNT_NOT_FOUND", "アカウントが見つかりません。", "", model.ErrNotFound)).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/accounts/me", &accountID, nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "ACCOUNT_NOT_FOUND", decodeErrorCode(t, rr))
	})

	t.Run("正常系: 削除は204", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.account.On("DeleteAccount", mock.Anything, accountID).Return(nil).Once()

		rr := sendRequest(t, router, http.MethodDelete, "/api/v1/accounts/me", &accountID, nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("異常系: 想定外のエラーは500で詳細を返さない", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.account.On("DeleteAccount", mock.Anything, accountID).Return(errors.New("connection reset")).Once()

		rr := sendRequest(t, router, http.MethodDelete, "/api/v1/accounts/me", &accountID, nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", decodeErrorCode(t, rr))
		assert.NotContains(t, rr.Body.String(), "connection reset")
	})
}

func TestAccountHandler_Logout(t *testing.T) {
	accountID := uuid.New()

	t.Run("正常系: 204を返す", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.account.On("Logout", mock.Anything, model.TokenInfo{}).Return(nil).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/auth/logout", &accountID, nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("異常系: 失効処理が失敗したら503", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.account.On("Logout", mock.Anything, model.TokenInfo{}).
			Return(model.NewAppError("LOGOUT_FAILED", "ログアウトに失敗しました。", "", model.ErrTransient)).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/auth/logout", &accountID, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "LOGOUT_FAILED", decodeErrorCode(t, rr))
	})
}
