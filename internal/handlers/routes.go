package handlers

import (
	"net/http"

	"go_5_pixel_ledger/internal/config"
	"go_5_pixel_ledger/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Handlers はルーティングに必要なハンドラ一式
type Handlers struct {
	Account     *AccountHandler
	Progress    *ProgressHandler
	Session     *SessionHandler
	Catalog     *CatalogHandler
	Achievement *AchievementHandler
	Avatar      *AvatarHandler
}

// RegisterRoutes は /api/v1 配下のルートを登録します。
// authMiddleware は認証が必要なグループに適用され、limiter が nil の場合はレート制限をかけない
func RegisterRoutes(r chi.Router, h Handlers, authMiddleware func(http.Handler) http.Handler, limiter *middleware.RateLimiter, rl config.RateLimitConfig) {
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/accounts", h.Account.Register)
		r.Post("/auth/login", h.Account.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/auth/logout", h.Account.Logout)
			r.Get("/accounts/me", h.Account.GetMe)
			r.Delete("/accounts/me", h.Account.DeleteMe)

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", h.Progress.GetProgress)
				r.Post("/points", h.Progress.AwardPoints)
				r.With(limiter.Limit("daily_reward", rl.DailyReward.Limit, rl.DailyReward.Window)).
					Post("/daily-reward", h.Progress.ClaimDailyReward)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", h.Session.RecentSessions)
				r.Post("/", h.Session.RecordSession)
			})
			r.Post("/workouts", h.Session.RecordWorkout)

			r.Route("/games", func(r chi.Router) {
				r.Get("/", h.Session.ListGames)
				r.Get("/{game_id}", h.Session.GetGame)
				r.Post("/{game_id}/favorite", h.Session.ToggleFavorite)
			})

			r.Route("/catalog", func(r chi.Router) {
				r.Get("/", h.Catalog.ListCatalog)
				r.Post("/{item_id}/purchase", h.Catalog.PurchaseItem)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", h.Catalog.ListUnlocked)
				r.Post("/{unlock_id}/equip", h.Catalog.EquipItem)
			})

			r.Route("/avatars", func(r chi.Router) {
				r.Get("/", h.Avatar.ListAvatars)
				r.Post("/", h.Avatar.SaveAvatar)
				r.Delete("/{preset_id}", h.Avatar.DeleteAvatar)
			})

			r.Route("/achievements", func(r chi.Router) {
				r.Get("/", h.Achievement.ListAchievements)
				r.With(limiter.Limit("achievement_claim", rl.Claim.Limit, rl.Claim.Window)).
					Post("/{achievement_id}/claim", h.Achievement.ClaimAchievement)
			})
		})
	})
}
