package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go_5_pixel_ledger/internal/webutil"

	"github.com/redis/go-redis/v9"
)

// RateLimiter は Redis の固定ウィンドウカウンタでリクエスト数を制限します。
type RateLimiter struct {
	redisClient *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{redisClient: client}
}

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

// Limit は keySuffix ごと・アカウントごとに window 内 limit 回までリクエストを通します。
// クライアントが nil の場合や Redis の障害時は制限しない。
func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl == nil || rl.redisClient == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}
			logger := GetLogger(r.Context())
			ctx := r.Context()

			key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, rateLimitSubject(r))

			var incr *redis.IntCmd
			var ttlCmd *redis.DurationCmd
			_, err := rl.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				incr = pipe.Incr(ctx, key)
				ttlCmd = pipe.TTL(ctx, key)
				return nil
			})
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}
			count := incr.Val()
			ttl := ttlCmd.Val()

			// 期限のないキー (新規作成、または以前の EXPIRE 失敗) にはウィンドウを設定し直す
			if ttl < 0 {
				if err := rl.redisClient.Expire(ctx, key, window).Err(); err != nil {
					logger.Warn("Failed to set rate limit window", slog.String("key", key), slog.Any("error", err))
				}
				ttl = window
			}

			if count > int64(limit) {
				retryAfter := int(ttl.Seconds())
				if retryAfter <= 0 {
					retryAfter = int(window.Seconds())
				}
				logger.Info("Rate limit exceeded", slog.String("key", key), slog.Int64("count", count))
				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				webutil.RespondWithJSON(w, http.StatusTooManyRequests, rateLimitResponse{
					Error:      "Too many requests",
					RetryAfter: retryAfter,
				}, logger)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitSubject は認証済みならアカウントID、未認証ならクライアントIPを返します。
func rateLimitSubject(r *http.Request) string {
	if id, err := GetAccountIDFromContext(r.Context()); err == nil {
		return id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
