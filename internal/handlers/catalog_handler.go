package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/service"
	"go_5_pixel_ledger/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// ListCatalog はアカウントごとの所持状態つきでカタログを返します
func (h *CatalogHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListCatalog")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	items, err := h.service.ListCatalog(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// PurchaseItem はコインでアイテムを購入します
func (h *CatalogHandler) PurchaseItem(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PurchaseItem")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	itemIDStr := chi.URLParam(r, "item_id")
	itemID, err := strconv.ParseUint(itemIDStr, 10, 64)
	if err != nil || itemID == 0 {
		logger.Warn("Invalid item_id", slog.String("item_id", itemIDStr))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "アイテムIDの形式が不正です。", "item_id", model.ErrInvalidInput))
		return
	}

	resp, err := h.service.PurchaseItem(r.Context(), accountID, uint(itemID))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// ListUnlocked は所持アイテムと装備中アイテムを返します
func (h *CatalogHandler) ListUnlocked(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListUnlocked")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.ListUnlocked(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// EquipItem は所持アイテムを装備します。同じスロットの装備は外れる
func (h *CatalogHandler) EquipItem(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "EquipItem")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	unlockIDStr := chi.URLParam(r, "unlock_id")
	unlockID, err := uuid.Parse(unlockIDStr)
	if err != nil {
		logger.Warn("Invalid unlock_id", slog.String("unlock_id", unlockIDStr))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "アンロックIDの形式が不正です。", "unlock_id", model.ErrInvalidInput))
		return
	}

	record, err := h.service.EquipItem(r.Context(), accountID, unlockID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, record, logger)
}
