package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/service"
	"go_5_pixel_ledger/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(s service.SessionService) *SessionHandler {
	return &SessionHandler{service: s}
}

// RecordSession はゲームのプレイ結果を記録します
func (h *SessionHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "RecordSession")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	var req model.RecordSessionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	summary, err := h.service.RecordSession(r.Context(), accountID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, summary, logger)
}

// RecordWorkout はワークアウトを記録します。ボディは省略可
func (h *SessionHandler) RecordWorkout(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "RecordWorkout")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	var req model.RecordWorkoutRequest
	if r.ContentLength != 0 && r.Body != http.NoBody {
		if !decodeAndValidate(w, r, logger, &req) {
			return
		}
	}

	summary, err := h.service.RecordWorkout(r.Context(), accountID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, summary, logger)
}

// RecentSessions は直近のプレイ記録を返します (?limit=n)
func (h *SessionHandler) RecentSessions(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "RecentSessions")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("Invalid limit query", slog.String("limit", v))
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "limitは1以上の整数で指定してください。", "limit", model.ErrInvalidInput))
			return
		}
		limit = n
	}

	sessions, err := h.service.RecentSessions(r.Context(), accountID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if sessions == nil {
		sessions = []*model.GameSession{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, sessions, logger)
}

// ListGames はゲームハブの一覧を返します
func (h *SessionHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListGames")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	hub, err := h.service.ListGames(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, hub, logger)
}

// GetGame はゲーム1件の詳細を返します
func (h *SessionHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetGame")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}
	gameID := chi.URLParam(r, "game_id")

	game, err := h.service.GetGame(r.Context(), accountID, gameID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, game, logger)
}

// ToggleFavorite はゲームのお気に入りを切り替えます
func (h *SessionHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ToggleFavorite")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}
	gameID := chi.URLParam(r, "game_id")

	resp, err := h.service.ToggleFavorite(r.Context(), accountID, gameID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
