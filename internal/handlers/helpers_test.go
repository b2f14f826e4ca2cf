package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_pixel_ledger/internal/config"
	"go_5_pixel_ledger/internal/handlers"
	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testServices はルーターに組み込んだサービスのモック一式
type testServices struct {
	account     *mocks.AccountService
	progress    *mocks.ProgressionService
	session     *mocks.SessionService
	catalog     *mocks.CatalogService
	achievement *mocks.AchievementService
	avatar      *mocks.AvatarService
}

// newTestRouter は開発用認証ミドルウェアで全ルートを登録したルーターを返します。
func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()

	s := &testServices{
		account:     mocks.NewAccountService(t),
		progress:    mocks.NewProgressionService(t),
		session:     mocks.NewSessionService(t),
		catalog:     mocks.NewCatalogService(t),
		achievement: mocks.NewAchievementService(t),
		avatar:      mocks.NewAvatarService(t),
	}
	h := handlers.Handlers{
		Account:     handlers.NewAccountHandler(s.account),
		Progress:    handlers.NewProgressHandler(s.progress),
		Session:     handlers.NewSessionHandler(s.session),
		Catalog:     handlers.NewCatalogHandler(s.catalog),
		Achievement: handlers.NewAchievementHandler(s.achievement),
		Avatar:      handlers.NewAvatarHandler(s.avatar),
	}

	r := chi.NewRouter()
	handlers.RegisterRoutes(r, h, middleware.DevAccountContextMiddleware, nil, config.RateLimitConfig{})
	return r, s
}

// sendRequest はリクエストを送信してレスポンスを返します。body が string の場合はそのまま送る
func sendRequest(t *testing.T, router http.Handler, method, path string, accountID *uuid.UUID, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accountID != nil {
		req.Header.Set("X-Account-ID", accountID.String())
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeErrorCode はエラーレスポンスのコードを取り出します。
func decodeErrorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error.Code
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), "body: %s", rr.Body.String())
}
