package handlers

import (
	"log/slog"
	"net/http"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/service"
	"go_5_pixel_ledger/internal/webutil"
)

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(s service.AccountService) *AccountHandler {
	return &AccountHandler{service: s}
}

// Register はアカウントを作成します。初期アイテムの付与まで完了した状態で返る
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "Register")

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	account, err := h.service.Register(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewAccountResponse(account), logger)
}

// Login はパスワードを検証し、JWTを返します
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "Login")

	var req model.LoginRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// サービス層でログは出力済み
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Logout は現在のトークンを失効させます
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "Logout")

	_, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	// 開発用認証ではトークン情報がないため、失効処理はスキップされる
	token, _ := middleware.GetTokenInfoFromContext(r.Context())
	if err := h.service.Logout(r.Context(), token); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMe は認証済みアカウント自身の情報を返します
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetMe")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	account, err := h.service.GetAccount(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewAccountResponse(account), logger)
}

// DeleteMe はアカウントと関連データをすべて削除します
func (h *AccountHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteMe")

	accountID, logger, ok := requireAccountID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteAccount(r.Context(), accountID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
