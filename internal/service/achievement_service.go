//go:generate mockery --name AchievementService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/progression"
	"go_5_pixel_ledger/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementService interface {
	ListAchievements(ctx context.Context, accountID uuid.UUID) ([]*model.AchievementResponse, error)
	ClaimAchievement(ctx context.Context, accountID uuid.UUID, achievementID string) (*model.ClaimAchievementResponse, error)
}

type achievementService struct {
	db              *gorm.DB
	accountRepo     repository.AccountRepository
	progressRepo    repository.ProgressRepository
	achievementRepo repository.AchievementRepository
	catalogRepo     repository.CatalogRepository
	unlockRepo      repository.UnlockRepository
	clock           progression.Clock
}

func NewAchievementService(
	db *gorm.DB,
	accountRepo repository.AccountRepository,
	progressRepo repository.ProgressRepository,
	achievementRepo repository.AchievementRepository,
	catalogRepo repository.CatalogRepository,
	unlockRepo repository.UnlockRepository,
	clock progression.Clock,
) AchievementService {
	return &achievementService{
		db:              db,
		accountRepo:     accountRepo,
		progressRepo:    progressRepo,
		achievementRepo: achievementRepo,
		catalogRepo:     catalogRepo,
		unlockRepo:      unlockRepo,
		clock:           clock,
	}
}

// ListAchievements は各実績の現在の進捗と状態 (locked / unlocked / claimed) を返します
func (s *achievementService) ListAchievements(ctx context.Context, accountID uuid.UUID) ([]*model.AchievementResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, s.db, accountID)
	if err != nil {
		return nil, lookupError(err)
	}
	pc, err := s.progressRepo.GetOrCreate(ctx, s.db, accountID)
	if err != nil {
		return nil, toAppError(err)
	}
	claims, err := s.achievementRepo.ListClaims(ctx, s.db, accountID)
	if err != nil {
		return nil, toAppError(err)
	}

	claimedAt := make(map[string]time.Time, len(claims))
	for _, c := range claims {
		claimedAt[c.AchievementID] = c.ClaimedAt
	}

	resp := make([]*model.AchievementResponse, 0, len(model.Achievements))
	for i := range model.Achievements {
		def := &model.Achievements[i]
		value, earned := def.Progress(account, pc)
		if value > def.Target {
			value = def.Target
		}

		r := &model.AchievementResponse{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Progress:    value,
			Target:      def.Target,
			RewardCoins: def.RewardCoins,
			State:       model.AchievementLocked,
		}
		if at, ok := claimedAt[def.ID]; ok {
			r.State = model.AchievementClaimed
			r.ClaimedAt = &at
		} else if earned {
			r.State = model.AchievementUnlocked
		}
		resp = append(resp, r)
	}
	return resp, nil
}

// ClaimAchievement は達成済みの実績の報酬を受け取ります。
// 報酬アイテムが設定されている実績は、そのアイテムも付与する
func (s *achievementService) ClaimAchievement(ctx context.Context, accountID uuid.UUID, achievementID string) (*model.ClaimAchievementResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("achievement_id", achievementID))

	def, ok := model.FindAchievement(achievementID)
	if !ok {
		return nil, model.NewAppError("ACHIEVEMENT_NOT_FOUND", "実績が見つかりません。", "achievement_id", model.ErrNotFound)
	}

	var resp *model.ClaimAchievementResponse
	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		account, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		pc, err := s.progressRepo.GetOrCreate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		if _, earned := def.Progress(account, pc); !earned {
			return model.ErrNotYetEarned
		}
		claimed, err := s.achievementRepo.ClaimExists(ctx, tx, accountID, def.ID)
		if err != nil {
			return err
		}
		if claimed {
			return model.ErrAlreadyClaimed
		}

		if err := progression.CreditCoins(account, def.RewardCoins, progression.SourceAchievement); err != nil {
			return err
		}

		now := s.clock.Now()
		claim := &model.AchievementClaim{
			AccountID:     accountID,
			AchievementID: def.ID,
			RewardCoins:   def.RewardCoins,
			ClaimedAt:     now,
		}
		if err := s.achievementRepo.CreateClaim(ctx, tx, claim); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.ErrAlreadyClaimed
			}
			return err
		}

		resp = &model.ClaimAchievementResponse{AchievementID: def.ID, RewardCoins: def.RewardCoins}

		rewards, err := s.catalogRepo.FindRewardsOf(ctx, tx, def.ID)
		if err != nil {
			return err
		}
		for _, item := range rewards {
			owned, err := s.unlockRepo.Exists(ctx, tx, accountID, item)
			if err != nil {
				return err
			}
			if owned {
				continue
			}
			unlock := model.NewUnlockRecord(accountID, item, model.UnlockMethodAchievementReward, now)
			if err := s.unlockRepo.Create(ctx, tx, unlock); err != nil {
				return err
			}
			pc.ItemsUnlocked++
			resp.RewardItem = unlock
		}

		if err := s.accountRepo.UpdateLedger(ctx, tx, account); err != nil {
			return err
		}
		if err := s.progressRepo.Update(ctx, tx, pc); err != nil {
			return err
		}
		resp.CoinBalance = account.CoinBalance
		return nil
	})
	if err != nil {
		return nil, lookupError(err)
	}

	logger.Info("Achievement claimed", slog.Int("reward_coins", resp.RewardCoins), slog.Bool("reward_item", resp.RewardItem != nil))
	return resp, nil
}
