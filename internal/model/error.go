// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrTransient      = errors.New("transient failure, retry later")
)

// 台帳の前提条件エラー。利用者に理由を返す想定のため、システムエラーとしてはログに出さない
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLevelTooLow       = errors.New("level too low")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrNotOwned          = errors.New("item not owned")
	ErrNotYetEarned      = errors.New("achievement not yet earned")
	ErrNotPurchasable    = errors.New("item is not purchasable")
)

// IsPreconditionError は err が台帳の前提条件エラーかどうかを返します。
func IsPreconditionError(err error) bool {
	for _, target := range []error{
		ErrInsufficientFunds,
		ErrLevelTooLow,
		ErrAlreadyOwned,
		ErrAlreadyClaimed,
		ErrNotOwned,
		ErrNotYetEarned,
		ErrNotPurchasable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ErrorDetail はクライアントに返すエラーの詳細
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はサービス層が返すエラー。クライアント向けの詳細と原因エラーを保持する
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Code + ": " + e.Err.Error()
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
