//go:generate mockery --name AvatarService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/progression"
	"go_5_pixel_ledger/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvatarService interface {
	SaveAvatar(ctx context.Context, accountID uuid.UUID, req *model.SaveAvatarRequest) (*model.SaveAvatarResponse, error)
	ListAvatars(ctx context.Context, accountID uuid.UUID) ([]*model.AvatarPreset, error)
	DeleteAvatar(ctx context.Context, accountID, presetID uuid.UUID) error
}

type avatarService struct {
	db           *gorm.DB
	accountRepo  repository.AccountRepository
	progressRepo repository.ProgressRepository
	avatarRepo   repository.AvatarRepository
	clock        progression.Clock
}

func NewAvatarService(db *gorm.DB, accountRepo repository.AccountRepository, progressRepo repository.ProgressRepository, avatarRepo repository.AvatarRepository, clock progression.Clock) AvatarService {
	return &avatarService{
		db:           db,
		accountRepo:  accountRepo,
		progressRepo: progressRepo,
		avatarRepo:   avatarRepo,
		clock:        clock,
	}
}

// SaveAvatar はアバター設定を保存し、作成数を加算します
func (s *avatarService) SaveAvatar(ctx context.Context, accountID uuid.UUID, req *model.SaveAvatarRequest) (*model.SaveAvatarResponse, error) {
	logger := middleware.GetLogger(ctx)

	style := req.Style
	if style == "" {
		style = model.DefaultAvatarStyle
	}

	var resp *model.SaveAvatarResponse
	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID); err != nil {
			return err
		}

		preset := &model.AvatarPreset{
			PresetID:  uuid.New(),
			AccountID: accountID,
			Name:      req.Name,
			Style:     style,
			Seed:      req.Seed,
			Options:   req.Options,
			CreatedAt: s.clock.Now(),
		}
		if err := s.avatarRepo.Create(ctx, tx, preset); err != nil {
			return err
		}

		pc, err := s.progressRepo.GetOrCreate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		pc.AvatarsCreated++
		if err := s.progressRepo.Update(ctx, tx, pc); err != nil {
			return err
		}

		resp = &model.SaveAvatarResponse{Preset: preset, AvatarsCreated: pc.AvatarsCreated}
		return nil
	})
	if err != nil {
		return nil, lookupError(err)
	}

	logger.Info("Avatar preset saved", slog.String("preset_id", resp.Preset.PresetID.String()))
	return resp, nil
}

func (s *avatarService) ListAvatars(ctx context.Context, accountID uuid.UUID) ([]*model.AvatarPreset, error) {
	presets, err := s.avatarRepo.ListByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, toAppError(err)
	}
	return presets, nil
}

// DeleteAvatar はプリセットを削除します。作成数 (avatarsCreated) は累計なので減らさない
func (s *avatarService) DeleteAvatar(ctx context.Context, accountID, presetID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID); err != nil {
			return err
		}
		if err := s.avatarRepo.Delete(ctx, tx, accountID, presetID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("AVATAR_NOT_FOUND", "アバタープリセットが見つかりません。", "preset_id", err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return lookupError(err)
	}

	logger.Info("Avatar preset deleted", slog.String("preset_id", presetID.String()))
	return nil
}
