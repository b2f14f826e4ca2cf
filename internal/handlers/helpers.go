package handlers

import (
	"log/slog"
	"net/http"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/webutil"

	"github.com/google/uuid"
)

// requireAccountID は認証ミドルウェアが設定したアカウントIDを返します。
// 取得できなければエラーレスポンスを書き込み、ok=false を返す
func requireAccountID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, *slog.Logger, bool) {
	accountID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, logger, false
	}
	return accountID, logger.With(slog.String("account_id", accountID.String())), true
}

// decodeAndValidate はボディのデコードと validate タグの検証を行います。
// 失敗した場合はエラーレスポンスを書き込み、false を返す
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}

// handlerLogger はリクエストスコープのロガーにハンドラ名を付けて返します。
func handlerLogger(r *http.Request, name string) *slog.Logger {
	return middleware.GetLogger(r.Context()).With(slog.String("handler", name))
}
