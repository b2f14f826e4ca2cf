package model

import (
	"time"

	"github.com/google/uuid"
)

// 新規アカウントの初期値
const (
	InitialLevel       = 1
	InitialCoinBalance = 100
)

// Account は利用者1人分の台帳（レベル・経験値・コイン・連続日数）を表します
type Account struct {
	AccountID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"account_id"`
	Name           string     `gorm:"not null;unique" json:"name"`
	Email          string     `gorm:"not null;unique" json:"email"`
	PasswordHash   string     `gorm:"not null" json:"-"`
	Level          int        `gorm:"not null;default:1" json:"level"`
	Experience     int        `gorm:"not null;default:0" json:"experience"`
	CoinBalance    int        `gorm:"not null;default:0;check:coin_balance >= 0" json:"coin_balance"`
	StreakLength   int        `gorm:"not null;default:0" json:"streak_length"`
	LastActiveDate *time.Time `gorm:"type:date" json:"last_active_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// GORM用のリレーション (アカウント削除時にまとめて削除する)
	Progress      *ProgressCounters  `gorm:"foreignKey:AccountID;references:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Unlocks       []UnlockRecord     `gorm:"foreignKey:AccountID;references:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Sessions      []GameSession      `gorm:"foreignKey:AccountID;references:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	GameRecords   []GameRecord       `gorm:"foreignKey:AccountID;references:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Claims        []AchievementClaim `gorm:"foreignKey:AccountID;references:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	AvatarPresets []AvatarPreset     `gorm:"foreignKey:AccountID;references:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

// NewAccount は登録直後の初期状態のアカウントを生成します。
func NewAccount(name, email, passwordHash string) *Account {
	return &Account{
		AccountID:    uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Level:        InitialLevel,
		Experience:   0,
		CoinBalance:  InitialCoinBalance,
		StreakLength: 0,
	}
}

type ContextKey string

const (
	AccountIDKey ContextKey = "accountID"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AccountResponse はクライアントに返すアカウント情報の構造体
type AccountResponse struct {
	AccountID    uuid.UUID `json:"account_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Level        int       `json:"level"`
	Experience   int       `json:"experience"`
	CoinBalance  int       `json:"coin_balance"`
	StreakLength int       `json:"streak_length"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewAccountResponse(a *Account) *AccountResponse {
	return &AccountResponse{
		AccountID:    a.AccountID,
		Name:         a.Name,
		Email:        a.Email,
		Level:        a.Level,
		Experience:   a.Experience,
		CoinBalance:  a.CoinBalance,
		StreakLength: a.StreakLength,
		CreatedAt:    a.CreatedAt,
	}
}
