package model

import (
	"time"

	"github.com/google/uuid"
)

// 実績ID
const (
	AchievementFirstSteps      = "first_steps"
	AchievementWeekWarrior     = "week_warrior"
	AchievementCenturyClub     = "century_club"
	AchievementMarathonMaster  = "marathon_master"
	AchievementStrengthSupreme = "strength_supreme"
	AchievementAvatarCreator   = "avatar_creator"
	AchievementLegendStatus    = "legend_status"
	AchievementFashionista     = "fashionista"
)

// AchievementState は実績の状態。Locked → Unlocked → Claimed の順にしか進まない
type AchievementState string

const (
	AchievementLocked   AchievementState = "locked"
	AchievementUnlocked AchievementState = "unlocked"
	AchievementClaimed  AchievementState = "claimed"
)

// AchievementDefinition は実績の定義。進捗は保存せず、現在の台帳から都度計算する
type AchievementDefinition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Target      int
	RewardCoins int
	// Metric は判定対象の現在値を返す
	Metric func(a *Account, pc *ProgressCounters) int
}

// Progress は判定対象の現在値と、達成済みかどうかを返します。
func (d *AchievementDefinition) Progress(a *Account, pc *ProgressCounters) (int, bool) {
	v := d.Metric(a, pc)
	return v, v >= d.Target
}

// Achievements は実績定義の一覧 (表示順)
var Achievements = []AchievementDefinition{
	{
		ID: AchievementFirstSteps, Name: "First Steps", Description: "Complete your first workout",
		Icon: "👟", Target: 1, RewardCoins: 50,
		Metric: func(_ *Account, pc *ProgressCounters) int { return pc.WorkoutsCompleted },
	},
	{
		ID: AchievementWeekWarrior, Name: "Week Warrior", Description: "Keep a 7-day activity streak",
		Icon: "🔥", Target: 7, RewardCoins: 100,
		Metric: func(a *Account, _ *ProgressCounters) int { return a.StreakLength },
	},
	{
		ID: AchievementCenturyClub, Name: "Century Club", Description: "Complete 100 workouts",
		Icon: "💯", Target: 100, RewardCoins: 500,
		Metric: func(_ *Account, pc *ProgressCounters) int { return pc.WorkoutsCompleted },
	},
	{
		ID: AchievementMarathonMaster, Name: "Marathon Master", Description: "Play 50 games",
		Icon: "🏃", Target: 50, RewardCoins: 300,
		Metric: func(_ *Account, pc *ProgressCounters) int { return pc.GamesPlayed },
	},
	{
		ID: AchievementStrengthSupreme, Name: "Strength Supreme", Description: "Complete 50 workouts",
		Icon: "💪", Target: 50, RewardCoins: 250,
		Metric: func(_ *Account, pc *ProgressCounters) int { return pc.WorkoutsCompleted },
	},
	{
		ID: AchievementAvatarCreator, Name: "Avatar Creator", Description: "Create 5 avatars",
		Icon: "🎨", Target: 5, RewardCoins: 150,
		Metric: func(_ *Account, pc *ProgressCounters) int { return pc.AvatarsCreated },
	},
	{
		ID: AchievementLegendStatus, Name: "Legend Status", Description: "Reach level 10",
		Icon: "👑", Target: 10, RewardCoins: 1000,
		Metric: func(a *Account, _ *ProgressCounters) int { return a.Level },
	},
	{
		ID: AchievementFashionista, Name: "Fashionista", Description: "Unlock 10 items",
		Icon: "👗", Target: 10, RewardCoins: 200,
		Metric: func(_ *Account, pc *ProgressCounters) int { return pc.ItemsUnlocked },
	},
}

// FindAchievement は ID に対応する実績定義を返します。
func FindAchievement(id string) (*AchievementDefinition, bool) {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i], true
		}
	}
	return nil, false
}

// AchievementClaim は実績の受け取り記録。(アカウント, 実績) ごとに1件のみ
type AchievementClaim struct {
	AccountID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	AchievementID string    `gorm:"type:varchar(50);primaryKey"`
	RewardCoins   int       `gorm:"not null"`
	ClaimedAt     time.Time `gorm:"not null"`
}

func (AchievementClaim) TableName() string {
	return "achievement_claims"
}

// AchievementResponse は実績一覧のレスポンスDTO
type AchievementResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Progress    int              `json:"progress"`
	Target      int              `json:"target"`
	RewardCoins int              `json:"reward_coins"`
	State       AchievementState `json:"state"`
	ClaimedAt   *time.Time       `json:"claimed_at,omitempty"`
}

// ClaimAchievementResponse は実績受け取りの結果
type ClaimAchievementResponse struct {
	AchievementID string        `json:"achievement_id"`
	RewardCoins   int           `json:"reward_coins"`
	CoinBalance   int           `json:"coin_balance"`
	RewardItem    *UnlockRecord `json:"reward_item,omitempty"`
}
