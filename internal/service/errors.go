package service

import (
	"errors"

	"go_5_pixel_ledger/internal/model"
)

// ledgerErrors は前提条件エラーごとのクライアント向けコードとメッセージ
var ledgerErrors = []struct {
	target  error
	code    string
	message string
}{
	{model.ErrInsufficientFunds, "INSUFFICIENT_FUNDS", "コインが足りません。"},
	{model.ErrLevelTooLow, "LEVEL_TOO_LOW", "レベルが足りません。"},
	{model.ErrAlreadyOwned, "ALREADY_OWNED", "このアイテムは既に所有しています。"},
	{model.ErrAlreadyClaimed, "ALREADY_CLAIMED", "既に受け取り済みです。"},
	{model.ErrNotOwned, "NOT_OWNED", "このアイテムは所有していません。"},
	{model.ErrNotYetEarned, "NOT_YET_EARNED", "まだ達成条件を満たしていません。"},
	{model.ErrNotPurchasable, "NOT_PURCHASABLE", "このアイテムは購入できません。"},
	{model.ErrTransient, "TRANSIENT_FAILURE", "混み合っています。時間をおいて再度お試しください。"},
	{model.ErrInvalidInput, "INVALID_INPUT", "入力内容が正しくありません。"},
}

// toAppError は err をクライアントに返せる AppError に変換します。
// AppError はそのまま、前提条件エラーは理由付き、それ以外は汎用の内部エラーにする。
func toAppError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, le := range ledgerErrors {
		if errors.Is(err, le.target) {
			return model.NewAppError(le.code, le.message, "", err)
		}
	}
	return internalError(err)
}

func internalError(err error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
}

func accountNotFound(err error) *model.AppError {
	return model.NewAppError("ACCOUNT_NOT_FOUND", "アカウントが見つかりません。", "", err)
}

// lookupError はアカウント取得時のエラーを変換します。
func lookupError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return accountNotFound(err)
	}
	return toAppError(err)
}
