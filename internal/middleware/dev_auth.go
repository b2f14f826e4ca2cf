package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/webutil"

	"github.com/google/uuid"
)

// DevAccountContextMiddleware は開発時用ミドルウェアです。
// X-Account-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでのアカウント存在チェックは行いません。
func DevAccountContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		accountIDStr := r.Header.Get("X-Account-ID")
		if accountIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-Account-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Account-IDヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		accountID, err := uuid.Parse(accountIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Account-ID format", slog.String("value", accountIDStr))
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Account-IDの形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] Account ID set to context (no validation)", slog.String("account_id", accountID.String()))

		ctx := context.WithValue(r.Context(), model.AccountIDKey, accountID)
		ctx = WithLogger(ctx, logger.With(slog.String("account_id", accountID.String())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
