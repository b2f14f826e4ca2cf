package handlers

import (
	"net/http"

	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/service"
	"go_5_pixel_ledger/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressionService
}

func NewProgressHandler(s service.ProgressionService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetProgress はレベル・経験値・コイン・各カウンタを返します
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetProgress")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	progress, err := h.service.GetProgress(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// AwardPoints は経験値を付与します
func (h *ProgressHandler) AwardPoints(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "AwardPoints")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	var req model.AwardPointsRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.AwardPoints(r.Context(), accountID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// ClaimDailyReward はデイリー報酬を受け取ります
func (h *ProgressHandler) ClaimDailyReward(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ClaimDailyReward")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.ClaimDailyReward(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
