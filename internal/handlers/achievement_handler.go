package handlers

import (
	"net/http"

	"go_5_pixel_ledger/internal/service"
	"go_5_pixel_ledger/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type AchievementHandler struct {
	service service.AchievementService
}

func NewAchievementHandler(s service.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: s}
}

func (h *AchievementHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListAchievements")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	list, err := h.service.ListAchievements(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

// ClaimAchievement は達成済み実績の報酬を受け取ります
func (h *AchievementHandler) ClaimAchievement(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ClaimAchievement")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}
	achievementID := chi.URLParam(r, "achievement_id")

	resp, err := h.service.ClaimAchievement(r.Context(), accountID, achievementID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
