package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// JWTCustomClaims はJWTに含めるクレーム。sub にアカウントID、jti に失効管理用のIDを入れる
type JWTCustomClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenInfo は検証済みトークンのうち、ログアウト処理で必要な情報
type TokenInfo struct {
	ID        string
	ExpiresAt int64
}

const TokenInfoKey ContextKey = "tokenInfo"
