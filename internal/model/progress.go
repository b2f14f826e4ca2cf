// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ExperiencePerLevel はレベルが1つ上がるのに必要な経験値
const ExperiencePerLevel = 100

// ProgressCounters はアカウントごとの活動カウンタとデイリー報酬の状態を表します (Accountと1対1)
type ProgressCounters struct {
	AccountID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	WorkoutsCompleted   int        `gorm:"not null;default:0" json:"workouts_completed"`
	GamesPlayed         int        `gorm:"not null;default:0" json:"games_played"`
	ItemsUnlocked       int        `gorm:"not null;default:0" json:"items_unlocked"`
	AvatarsCreated      int        `gorm:"not null;default:0" json:"avatars_created"`
	DailyRewardStreak   int        `gorm:"not null;default:0" json:"daily_reward_streak"`
	LastDailyRewardDate *time.Time `gorm:"type:date" json:"last_daily_reward_date"`
	CreatedAt           time.Time  `json:"-"`
	UpdatedAt           time.Time  `json:"-"`
}

func (ProgressCounters) TableName() string {
	return "progress_counters"
}

// ProgressResponse は進捗取得APIのレスポンスDTO
type ProgressResponse struct {
	Level               int  `json:"level"`
	Experience          int  `json:"experience"`
	ExperienceInLevel   int  `json:"experience_in_level"`
	ExperienceToNext    int  `json:"experience_to_next_level"`
	CoinBalance         int  `json:"coin_balance"`
	StreakLength        int  `json:"streak_length"`
	WorkoutsCompleted   int  `json:"workouts_completed"`
	GamesPlayed         int  `json:"games_played"`
	ItemsUnlocked       int  `json:"items_unlocked"`
	AvatarsCreated      int  `json:"avatars_created"`
	CanClaimDailyReward bool `json:"can_claim_daily_reward"`
	DailyRewardStreak   int  `json:"daily_reward_streak"`
}

// AwardPointsRequest は経験値付与APIのリクエストDTO
type AwardPointsRequest struct {
	Points int    `json:"points" validate:"required,gt=0,lte=10000"`
	Reason string `json:"reason" validate:"omitempty,max=100"`
}

// ExperienceAwardResponse は経験値付与の結果
type ExperienceAwardResponse struct {
	ExperienceAwarded int  `json:"experience_awarded"`
	LeveledUp         bool `json:"leveled_up"`
	NewLevel          int  `json:"new_level"`
	CoinsAwarded      int  `json:"coins_awarded"`
	TotalExperience   int  `json:"total_experience"`
	CoinBalance       int  `json:"coin_balance"`
	StreakLength      int  `json:"streak_length"`
}

// DailyRewardResponse はデイリー報酬受け取りの結果
type DailyRewardResponse struct {
	RewardCoins       int `json:"reward_coins"`
	DailyRewardStreak int `json:"daily_reward_streak"`
	CoinBalance       int `json:"coin_balance"`
}
