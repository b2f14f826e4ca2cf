//go:generate mockery --name ProgressionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/progression"
	"go_5_pixel_ledger/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressionService interface {
	GetProgress(ctx context.Context, accountID uuid.UUID) (*model.ProgressResponse, error)
	AwardPoints(ctx context.Context, accountID uuid.UUID, req *model.AwardPointsRequest) (*model.ExperienceAwardResponse, error)
	ClaimDailyReward(ctx context.Context, accountID uuid.UUID) (*model.DailyRewardResponse, error)
}

type progressionService struct {
	db           *gorm.DB
	accountRepo  repository.AccountRepository
	progressRepo repository.ProgressRepository
	clock        progression.Clock
}

func NewProgressionService(db *gorm.DB, accountRepo repository.AccountRepository, progressRepo repository.ProgressRepository, clock progression.Clock) ProgressionService {
	return &progressionService{
		db:           db,
		accountRepo:  accountRepo,
		progressRepo: progressRepo,
		clock:        clock,
	}
}

func (s *progressionService) GetProgress(ctx context.Context, accountID uuid.UUID) (*model.ProgressResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, s.db, accountID)
	if err != nil {
		return nil, lookupError(err)
	}
	pc, err := s.progressRepo.GetOrCreate(ctx, s.db, accountID)
	if err != nil {
		return nil, toAppError(err)
	}

	inLevel, toNext := progression.ExperienceInLevel(account.Experience)
	return &model.ProgressResponse{
		Level:               account.Level,
		Experience:          account.Experience,
		ExperienceInLevel:   inLevel,
		ExperienceToNext:    toNext,
		CoinBalance:         account.CoinBalance,
		StreakLength:        account.StreakLength,
		WorkoutsCompleted:   pc.WorkoutsCompleted,
		GamesPlayed:         pc.GamesPlayed,
		ItemsUnlocked:       pc.ItemsUnlocked,
		AvatarsCreated:      pc.AvatarsCreated,
		CanClaimDailyReward: progression.CanClaimDailyReward(pc, s.clock.Today()),
		DailyRewardStreak:   pc.DailyRewardStreak,
	}, nil
}

// AwardPoints は任意の理由で経験値を付与します。理由が空の場合は "manual"
func (s *progressionService) AwardPoints(ctx context.Context, accountID uuid.UUID, req *model.AwardPointsRequest) (*model.ExperienceAwardResponse, error) {
	logger := middleware.GetLogger(ctx)

	source := req.Reason
	if source == "" {
		source = progression.SourceManual
	}

	var resp *model.ExperienceAwardResponse
	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		account, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		result, err := progression.AwardExperience(account, req.Points, source, s.clock.Today())
		if err != nil {
			return err
		}
		if err := s.accountRepo.UpdateLedger(ctx, tx, account); err != nil {
			return err
		}

		resp = &model.ExperienceAwardResponse{
			ExperienceAwarded: req.Points,
			LeveledUp:         result.LeveledUp,
			NewLevel:          result.NewLevel,
			CoinsAwarded:      result.CoinsAwarded,
			TotalExperience:   account.Experience,
			CoinBalance:       account.CoinBalance,
			StreakLength:      account.StreakLength,
		}
		return nil
	})
	if err != nil {
		return nil, lookupError(err)
	}

	logger.Info("Experience awarded",
		slog.String("source", source),
		slog.Int("points", req.Points),
		slog.Bool("leveled_up", resp.LeveledUp),
		slog.Int("level", resp.NewLevel),
	)
	return resp, nil
}

// ClaimDailyReward はデイリー報酬を受け取ります。同じ日に2回目は ALREADY_CLAIMED
func (s *progressionService) ClaimDailyReward(ctx context.Context, accountID uuid.UUID) (*model.DailyRewardResponse, error) {
	logger := middleware.GetLogger(ctx)

	var resp *model.DailyRewardResponse
	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		account, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		pc, err := s.progressRepo.GetOrCreate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		result, err := progression.ClaimDailyReward(pc, account, s.clock.Today())
		if err != nil {
			return err
		}
		if err := s.accountRepo.UpdateLedger(ctx, tx, account); err != nil {
			return err
		}
		if err := s.progressRepo.Update(ctx, tx, pc); err != nil {
			return err
		}

		resp = &model.DailyRewardResponse{
			RewardCoins:       result.RewardCoins,
			DailyRewardStreak: result.NewStreak,
			CoinBalance:       account.CoinBalance,
		}
		return nil
	})
	if err != nil {
		return nil, lookupError(err)
	}

	logger.Info("Daily reward claimed", slog.Int("coins", resp.RewardCoins), slog.Int("streak", resp.DailyRewardStreak))
	return resp, nil
}
