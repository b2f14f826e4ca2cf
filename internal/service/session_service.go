//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_5_pixel_ledger/internal/config"
	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/progression"
	"go_5_pixel_ledger/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService interface {
	RecordSession(ctx context.Context, accountID uuid.UUID, req *model.RecordSessionRequest) (*model.SessionSummary, error)
	RecordWorkout(ctx context.Context, accountID uuid.UUID, req *model.RecordWorkoutRequest) (*model.SessionSummary, error)
	RecentSessions(ctx context.Context, accountID uuid.UUID, limit int) ([]*model.GameSession, error)
	ListGames(ctx context.Context, accountID uuid.UUID) (*model.GameHubResponse, error)
	GetGame(ctx context.Context, accountID uuid.UUID, gameID string) (*model.GameResponse, error)
	ToggleFavorite(ctx context.Context, accountID uuid.UUID, gameID string) (*model.FavoriteResponse, error)
}

type sessionService struct {
	db             *gorm.DB
	accountRepo    repository.AccountRepository
	progressRepo   repository.ProgressRepository
	sessionRepo    repository.SessionRepository
	gameRecordRepo repository.GameRecordRepository
	clock          progression.Clock
	cfg            *config.Config
}

func NewSessionService(
	db *gorm.DB,
	accountRepo repository.AccountRepository,
	progressRepo repository.ProgressRepository,
	sessionRepo repository.SessionRepository,
	gameRecordRepo repository.GameRecordRepository,
	clock progression.Clock,
	cfg *config.Config,
) SessionService {
	return &sessionService{
		db:             db,
		accountRepo:    accountRepo,
		progressRepo:   progressRepo,
		sessionRepo:    sessionRepo,
		gameRecordRepo: gameRecordRepo,
		clock:          clock,
		cfg:            cfg,
	}
}

// sessionXP は指定がなければ 基本値 + min(スコア/10, 50) を返します。
func sessionXP(req *model.RecordSessionRequest) int {
	if req.XPEarned != nil {
		return *req.XPEarned
	}
	base := model.DefaultSessionBaseXP
	if req.BaseXP != nil {
		base = *req.BaseXP
	}
	return progression.SessionExperience(base, req.Score)
}

// RecordSession はプレイ記録の追加・経験値付与・プレイ回数の加算・ゲーム別集計の更新を1トランザクションで行います。
// どこかで失敗した場合は何も残さない。
func (s *sessionService) RecordSession(ctx context.Context, accountID uuid.UUID, req *model.RecordSessionRequest) (*model.SessionSummary, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("game_id", req.GameID))
	xp := sessionXP(req)

	var summary *model.SessionSummary
	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		account, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		pc, err := s.progressRepo.GetOrCreate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		session := &model.GameSession{
			SessionID:       uuid.New(),
			AccountID:       accountID,
			GameIdentifier:  req.GameID,
			Score:           req.Score,
			DurationMinutes: req.DurationMinutes,
			XPEarned:        xp,
			Completed:       req.Completed,
			PlayedAt:        now,
		}
		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			return err
		}

		result, err := progression.AwardExperience(account, xp, progression.SourceGame, s.clock.Today())
		if err != nil {
			return err
		}

		// クリアの有無にかかわらず毎回数える
		pc.GamesPlayed++

		if _, err := s.gameRecordRepo.RecordPlay(ctx, tx, accountID, req.GameID, req.Score, req.Completed, now); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateLedger(ctx, tx, account); err != nil {
			return err
		}
		if err := s.progressRepo.Update(ctx, tx, pc); err != nil {
			return err
		}

		summary = &model.SessionSummary{
			SessionID:         &session.SessionID,
			XPEarned:          xp,
			LeveledUp:         result.LeveledUp,
			NewLevel:          result.NewLevel,
			CoinsAwarded:      result.CoinsAwarded,
			GamesPlayed:       pc.GamesPlayed,
			WorkoutsCompleted: pc.WorkoutsCompleted,
			StreakLength:      account.StreakLength,
		}
		return nil
	})
	if err != nil {
		return nil, lookupError(err)
	}

	logger.Info("Game session recorded",
		slog.Int("xp", xp),
		slog.Bool("leveled_up", summary.LeveledUp),
		slog.Int("games_played", summary.GamesPlayed),
	)
	return summary, nil
}

// RecordWorkout はワークアウト1回分の経験値を付与し、完了数を加算します
func (s *sessionService) RecordWorkout(ctx context.Context, accountID uuid.UUID, req *model.RecordWorkoutRequest) (*model.SessionSummary, error) {
	logger := middleware.GetLogger(ctx)

	xp := model.DefaultWorkoutXP
	if req != nil && req.XPEarned != nil {
		xp = *req.XPEarned
	}

	var summary *model.SessionSummary
	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		account, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		pc, err := s.progressRepo.GetOrCreate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		result, err := progression.AwardExperience(account, xp, progression.SourceWorkout, s.clock.Today())
		if err != nil {
			return err
		}
		pc.WorkoutsCompleted++

		if err := s.accountRepo.UpdateLedger(ctx, tx, account); err != nil {
			return err
		}
		if err := s.progressRepo.Update(ctx, tx, pc); err != nil {
			return err
		}

		summary = &model.SessionSummary{
			XPEarned:          xp,
			LeveledUp:         result.LeveledUp,
			NewLevel:          result.NewLevel,
			CoinsAwarded:      result.CoinsAwarded,
			GamesPlayed:       pc.GamesPlayed,
			WorkoutsCompleted: pc.WorkoutsCompleted,
			StreakLength:      account.StreakLength,
		}
		return nil
	})
	if err != nil {
		return nil, lookupError(err)
	}

	logger.Info("Workout recorded", slog.Int("xp", xp), slog.Int("workouts_completed", summary.WorkoutsCompleted))
	return summary, nil
}

// RecentSessions は新しい順にプレイ記録を返します。limit が 0 以下なら設定値、上限は config.MaxRecentSessionsLimit
func (s *sessionService) RecentSessions(ctx context.Context, accountID uuid.UUID, limit int) ([]*model.GameSession, error) {
	if limit <= 0 {
		limit = s.cfg.App.RecentSessionsLimit
	}
	if limit <= 0 {
		limit = config.DefaultRecentSessionsLimit
	}
	if limit > config.MaxRecentSessionsLimit {
		limit = config.MaxRecentSessionsLimit
	}

	sessions, err := s.sessionRepo.ListRecent(ctx, s.db, accountID, limit)
	if err != nil {
		return nil, toAppError(err)
	}
	return sessions, nil
}

// ListGames はゲーム一覧に、レベルによるロック状態とアカウントごとの集計を付けて返します
func (s *sessionService) ListGames(ctx context.Context, accountID uuid.UUID) (*model.GameHubResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, s.db, accountID)
	if err != nil {
		return nil, lookupError(err)
	}
	records, err := s.gameRecordRepo.ListByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, toAppError(err)
	}

	byGame := make(map[string]*model.GameRecord, len(records))
	for _, rec := range records {
		byGame[rec.GameIdentifier] = rec
	}

	games := make([]*model.GameResponse, 0, len(model.Games))
	for _, def := range model.Games {
		games = append(games, gameResponse(def, account.Level, byGame[def.ID]))
	}

	return &model.GameHubResponse{Games: games, UserLevel: account.Level}, nil
}

// GetGame は1つのゲームの定義とアカウントの集計を返します。未プレイなら集計はゼロ値
func (s *sessionService) GetGame(ctx context.Context, accountID uuid.UUID, gameID string) (*model.GameResponse, error) {
	def, ok := model.FindGame(gameID)
	if !ok {
		return nil, model.NewAppError("GAME_NOT_FOUND", "ゲームが見つかりません。", "game_id", model.ErrNotFound)
	}

	account, err := s.accountRepo.FindByID(ctx, s.db, accountID)
	if err != nil {
		return nil, lookupError(err)
	}
	rec, err := s.gameRecordRepo.Find(ctx, s.db, accountID, gameID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return nil, toAppError(err)
		}
		rec = nil
	}
	return gameResponse(*def, account.Level, rec), nil
}

func gameResponse(def model.GameDefinition, level int, rec *model.GameRecord) *model.GameResponse {
	g := &model.GameResponse{
		GameDefinition: def,
		Locked:         level < def.MinLevel,
	}
	if rec != nil {
		g.Completed = rec.Completed
		g.IsFavorite = rec.IsFavorite
		g.TimesPlayed = rec.TimesPlayed
		g.PersonalBest = rec.PersonalBest
		g.LastPlayed = rec.LastPlayedAt
	}
	return g
}

func (s *sessionService) ToggleFavorite(ctx context.Context, accountID uuid.UUID, gameID string) (*model.FavoriteResponse, error) {
	if _, ok := model.FindGame(gameID); !ok {
		return nil, model.NewAppError("GAME_NOT_FOUND", "ゲームが見つかりません。", "game_id", model.ErrNotFound)
	}

	var favorite bool
	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.accountRepo.FindByIDForUpdate(ctx, tx, accountID); err != nil {
			return err
		}
		var err error
		favorite, err = s.gameRecordRepo.ToggleFavorite(ctx, tx, accountID, gameID)
		return err
	})
	if err != nil {
		return nil, lookupError(err)
	}
	return &model.FavoriteResponse{GameID: gameID, IsFavorite: favorite}, nil
}
