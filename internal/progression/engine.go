// Package progression は台帳 (経験値・レベル・コイン・連続日数・デイリー報酬) の計算ロジックです。
// 永続化は行わず、渡された Account / ProgressCounters を書き換えるだけ。
// 呼び出し側 (service) がロックを取ったトランザクション内で使う想定。
package progression

import (
	"fmt"
	"math"
	"time"

	"go_5_pixel_ledger/internal/model"
)

const (
	CoinsPerLevel          = 50
	DailyRewardBaseCoins   = 10
	DailyRewardStreakBonus = 2
)

// 経験値・コインの出所
const (
	SourceGame        = "game"
	SourceWorkout     = "workout"
	SourceManual      = "manual"
	SourceLevelUp     = "level_up"
	SourceDailyReward = "daily_reward"
	SourceAchievement = "achievement"
)

// ExperienceResult は AwardExperience の結果
type ExperienceResult struct {
	Source          string
	LeveledUp       bool
	NewLevel        int
	CoinsAwarded    int
	StreakContinued bool
}

// DailyRewardResult は ClaimDailyReward の結果
type DailyRewardResult struct {
	RewardCoins int
	NewStreak   int
}

// LevelForExperience は累計経験値に対応するレベルを返します。
func LevelForExperience(experience int) int {
	return experience/model.ExperiencePerLevel + 1
}

// AwardExperience は経験値を加算し、レベルアップ時はレベル差×50コインを付与します。
// 経験値の付与は活動の記録も兼ねるため、連続日数も更新する。
// amount が正でない場合は何も変更せずにエラーを返す。
func AwardExperience(a *model.Account, amount int, source string, today time.Time) (ExperienceResult, error) {
	if amount <= 0 {
		return ExperienceResult{}, fmt.Errorf("%w: experience amount must be positive, got %d", model.ErrInvalidInput, amount)
	}
	if amount > math.MaxInt-a.Experience {
		return ExperienceResult{}, fmt.Errorf("%w: experience would overflow (current=%d, amount=%d)", model.ErrInvalidInput, a.Experience, amount)
	}

	result := ExperienceResult{Source: source, NewLevel: a.Level}
	experience := a.Experience + amount
	newLevel := LevelForExperience(experience)
	bonus := 0
	if newLevel > a.Level {
		bonus = (newLevel - a.Level) * CoinsPerLevel
		if bonus > math.MaxInt-a.CoinBalance {
			return ExperienceResult{}, fmt.Errorf("%w: coin balance would overflow (current=%d, bonus=%d)", model.ErrInvalidInput, a.CoinBalance, bonus)
		}
	}

	a.Experience = experience
	if bonus > 0 {
		a.CoinBalance += bonus
		a.Level = newLevel
		result.LeveledUp = true
		result.NewLevel = newLevel
		result.CoinsAwarded = bonus
	}

	result.StreakContinued = UpdateStreak(a, today)
	return result, nil
}

// UpdateStreak は今日の活動を連続日数に反映し、連続が伸びたかどうかを返します。
// 同じ日に何度呼んでも結果は変わらない。
func UpdateStreak(a *model.Account, today time.Time) bool {
	streak, last, continued := advanceStreak(a.StreakLength, a.LastActiveDate, today)
	a.StreakLength = streak
	a.LastActiveDate = last
	return continued
}

// advanceStreak は日付ベースの連続判定。
// 初回は1 (継続扱い)、同日は変更なし、翌日なら+1、それ以外 (2日以上空いた・過去日付) は1にリセット。
func advanceStreak(streak int, last *time.Time, today time.Time) (int, *time.Time, bool) {
	day := DateOf(today)
	if last == nil {
		return 1, &day, true
	}
	switch DaysBetween(*last, day) {
	case 0:
		return streak, last, false
	case 1:
		return streak + 1, &day, true
	default:
		return 1, &day, false
	}
}

// CreditCoins はコインを加算します。amount は正であること。
func CreditCoins(a *model.Account, amount int, source string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: credit amount must be positive, got %d (source=%s)", model.ErrInvalidInput, amount, source)
	}
	if amount > math.MaxInt-a.CoinBalance {
		return fmt.Errorf("%w: coin balance would overflow (current=%d, amount=%d, source=%s)", model.ErrInvalidInput, a.CoinBalance, amount, source)
	}
	a.CoinBalance += amount
	return nil
}

// DebitCoins は残高が足りる場合のみコインを減算します。足りなければ何も変更しない。
func DebitCoins(a *model.Account, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: debit amount must not be negative, got %d", model.ErrInvalidInput, amount)
	}
	if a.CoinBalance < amount {
		return model.ErrInsufficientFunds
	}
	a.CoinBalance -= amount
	return nil
}

// CanClaimDailyReward は今日のデイリー報酬がまだ受け取れるかを返します。
func CanClaimDailyReward(pc *model.ProgressCounters, today time.Time) bool {
	if pc.LastDailyRewardDate == nil {
		return true
	}
	return DaysBetween(*pc.LastDailyRewardDate, today) > 0
}

// ClaimDailyReward はデイリー報酬を付与します。報酬は 10 + 連続受け取り日数×2 コイン。
// 受け取り済みの日は ErrAlreadyClaimed を返し、何も変更しない。
func ClaimDailyReward(pc *model.ProgressCounters, a *model.Account, today time.Time) (DailyRewardResult, error) {
	if !CanClaimDailyReward(pc, today) {
		return DailyRewardResult{}, model.ErrAlreadyClaimed
	}

	streak, last, _ := advanceStreak(pc.DailyRewardStreak, pc.LastDailyRewardDate, today)
	coins := DailyRewardBaseCoins + streak*DailyRewardStreakBonus
	if err := CreditCoins(a, coins, SourceDailyReward); err != nil {
		return DailyRewardResult{}, err
	}

	pc.DailyRewardStreak = streak
	pc.LastDailyRewardDate = last
	return DailyRewardResult{RewardCoins: coins, NewStreak: streak}, nil
}

// SessionExperience はゲームセッションの獲得経験値を返します。基本値 + min(スコア/10, 50)。
func SessionExperience(baseXP, score int) int {
	bonus := score / 10
	if bonus > model.MaxSessionScoreBonusXP {
		bonus = model.MaxSessionScoreBonusXP
	}
	if bonus < 0 {
		bonus = 0
	}
	return baseXP + bonus
}

// ExperienceInLevel は現在のレベル内で獲得済みの経験値と、次のレベルまでの残りを返します。
func ExperienceInLevel(experience int) (inLevel, toNext int) {
	inLevel = experience % model.ExperiencePerLevel
	return inLevel, model.ExperiencePerLevel - inLevel
}
