package handlers

import (
	"log/slog"
	"net/http"

	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/service"
	"go_5_pixel_ledger/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AvatarHandler struct {
	service service.AvatarService
}

func NewAvatarHandler(s service.AvatarService) *AvatarHandler {
	return &AvatarHandler{service: s}
}

// SaveAvatar はアバタープリセットを保存します
func (h *AvatarHandler) SaveAvatar(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "SaveAvatar")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	var req model.SaveAvatarRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SaveAvatar(r.Context(), accountID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

func (h *AvatarHandler) ListAvatars(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListAvatars")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	presets, err := h.service.ListAvatars(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if presets == nil {
		presets = []*model.AvatarPreset{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, presets, logger)
}

// DeleteAvatar はアバタープリセットを削除します
func (h *AvatarHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteAvatar")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	presetIDStr := chi.URLParam(r, "preset_id")
	presetID, err := uuid.Parse(presetIDStr)
	if err != nil {
		logger.Warn("Invalid preset_id", slog.String("preset_id", presetIDStr))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "プリセットIDの形式が不正です。", "preset_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.DeleteAvatar(r.Context(), accountID, presetID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
