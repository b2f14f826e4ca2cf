package model

import (
	"time"

	"github.com/google/uuid"
)

// GameSession は1回のプレイ記録。追記のみで更新・削除はしない
type GameSession struct {
	SessionID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	AccountID       uuid.UUID `gorm:"type:uuid;not null;index:idx_sessions_account_played" json:"-"`
	GameIdentifier  string    `gorm:"type:varchar(100);not null" json:"game_id"`
	Score           int       `gorm:"not null;default:0" json:"score"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	XPEarned        int       `gorm:"not null;default:0" json:"xp_earned"`
	Completed       bool      `gorm:"not null;default:false" json:"completed"`
	PlayedAt        time.Time `gorm:"not null;index:idx_sessions_account_played" json:"played_at"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// GameRecord はアカウント×ゲームごとの集計。Completed は一度立てたら戻さない
type GameRecord struct {
	AccountID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	GameIdentifier string     `gorm:"type:varchar(100);primaryKey" json:"game_id"`
	TimesPlayed    int        `gorm:"not null;default:0" json:"times_played"`
	PersonalBest   int        `gorm:"not null;default:0" json:"personal_best"`
	Completed      bool       `gorm:"not null;default:false" json:"completed"`
	IsFavorite     bool       `gorm:"not null;default:false" json:"is_favorite"`
	LastPlayedAt   *time.Time `json:"last_played_at"`
	UpdatedAt      time.Time  `json:"-"`
}

func (GameRecord) TableName() string {
	return "game_records"
}

// セッションXPの既定値
const (
	DefaultSessionBaseXP   = 10
	MaxSessionScoreBonusXP = 50
	DefaultWorkoutXP       = 20
)

// RecordSessionRequest はセッション記録APIのリクエストDTO
// XPEarned を省略した場合は BaseXP とスコアから算出する
type RecordSessionRequest struct {
	GameID          string `json:"game_id" validate:"required,max=100"`
	Score           int    `json:"score" validate:"gte=0"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	Completed       bool   `json:"completed"`
	XPEarned        *int   `json:"xp_earned,omitempty" validate:"omitempty,gt=0,lte=10000"`
	BaseXP          *int   `json:"base_xp,omitempty" validate:"omitempty,gt=0,lte=1000"`
}

// RecordWorkoutRequest はワークアウト記録APIのリクエストDTO
type RecordWorkoutRequest struct {
	XPEarned *int `json:"xp_earned,omitempty" validate:"omitempty,gt=0,lte=10000"`
}

// SessionSummary はセッション・ワークアウト記録後の集計結果
type SessionSummary struct {
	SessionID         *uuid.UUID `json:"session_id,omitempty"`
	XPEarned          int        `json:"xp_earned"`
	LeveledUp         bool       `json:"leveled_up"`
	NewLevel          int        `json:"new_level"`
	CoinsAwarded      int        `json:"coins_awarded"`
	GamesPlayed       int        `json:"games_played"`
	WorkoutsCompleted int        `json:"workouts_completed"`
	StreakLength      int        `json:"streak_length"`
}
