package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RevocationChecker はログアウト済みトークンかどうかを判定します。
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
// revoked が nil の場合は失効チェックを行わない。
func JWTAuthMiddleware(secretKey string, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized))
				return
			}

			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secretKey), nil
			}, jwt.WithExpirationRequired())
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", slog.Any("error", err))
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized))
				return
			}

			accountID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", slog.String("subject", claims.Subject), slog.Any("error", err))
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthorized))
				return
			}

			if revoked != nil && claims.ID != "" {
				isRevoked, err := revoked.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					// 失効ストアの障害時は署名検証の結果を優先する
					logger.Error("JWT auth: revocation check failed", slog.Any("error", err))
				} else if isRevoked {
					logger.Warn("JWT auth failed: token revoked", slog.String("jti", claims.ID))
					webutil.HandleError(w, logger, model.NewAppError("TOKEN_REVOKED", "このトークンはログアウト済みです。", "", model.ErrUnauthorized))
					return
				}
			}

			info := model.TokenInfo{ID: claims.ID}
			if claims.ExpiresAt != nil {
				info.ExpiresAt = claims.ExpiresAt.Unix()
			}

			ctx := context.WithValue(r.Context(), model.AccountIDKey, accountID)
			ctx = context.WithValue(ctx, model.TokenInfoKey, info)
			ctx = WithLogger(ctx, logger.With(slog.String("account_id", accountID.String())))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccountIDFromContext は認証ミドルウェアが格納したアカウントIDを返します。
func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.AccountIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからユーザー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}

// GetTokenInfoFromContext は検証済みトークンの情報を返します。開発用認証の場合は ok=false
func GetTokenInfoFromContext(ctx context.Context) (model.TokenInfo, bool) {
	info, ok := ctx.Value(model.TokenInfoKey).(model.TokenInfo)
	return info, ok
}
