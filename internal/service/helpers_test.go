package service_test

import (
	"context"
	"testing"
	"time"

	"go_5_pixel_ledger/internal/config"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/progression"
	"go_5_pixel_ledger/internal/repository"
	"go_5_pixel_ledger/internal/service"
	"go_5_pixel_ledger/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ledgerEnv は SQLite と実リポジトリで組み立てたサービス一式
type ledgerEnv struct {
	db    *gorm.DB
	clock *progression.FixedClock
	cfg   *config.Config

	accountRepo     repository.AccountRepository
	progressRepo    repository.ProgressRepository
	catalogRepo     repository.CatalogRepository
	unlockRepo      repository.UnlockRepository
	sessionRepo     repository.SessionRepository
	gameRecordRepo  repository.GameRecordRepository
	achievementRepo repository.AchievementRepository
	avatarRepo      repository.AvatarRepository

	accountSvc     service.AccountService
	progressionSvc service.ProgressionService
	sessionSvc     service.SessionService
	catalogSvc     service.CatalogService
	achievementSvc service.AchievementService
	avatarSvc      service.AvatarService
}

func migrate(db *gorm.DB) error {
	return repository.AutoMigrate(context.Background(), db)
}

func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()

	db := testutil.NewSQLiteDB(t, migrate)
	env := &ledgerEnv{
		db:    db,
		clock: &progression.FixedClock{T: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		cfg: &config.Config{
			App: config.AppConfig{RecentSessionsLimit: config.DefaultRecentSessionsLimit},
			JWT: config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: time.Hour},
		},
		accountRepo:     repository.NewGormAccountRepository(),
		progressRepo:    repository.NewGormProgressRepository(),
		catalogRepo:     repository.NewGormCatalogRepository(),
		unlockRepo:      repository.NewGormUnlockRepository(),
		sessionRepo:     repository.NewGormSessionRepository(),
		gameRecordRepo:  repository.NewGormGameRecordRepository(),
		achievementRepo: repository.NewGormAchievementRepository(),
		avatarRepo:      repository.NewGormAvatarRepository(),
	}

	_, err := env.catalogRepo.Seed(context.Background(), db, model.DefaultCatalog())
	require.NoError(t, err)

	env.catalogSvc = service.NewCatalogService(db, env.accountRepo, env.progressRepo, env.catalogRepo, env.unlockRepo, nil, env.clock)
	env.accountSvc = service.NewAccountService(db, env.accountRepo, env.progressRepo, env.catalogSvc, &service.LogMailer{}, nil, env.cfg)
	env.progressionSvc = service.NewProgressionService(db, env.accountRepo, env.progressRepo, env.clock)
	env.sessionSvc = service.NewSessionService(db, env.accountRepo, env.progressRepo, env.sessionRepo, env.gameRecordRepo, env.clock, env.cfg)
	env.achievementSvc = service.NewAchievementService(db, env.accountRepo, env.progressRepo, env.achievementRepo, env.catalogRepo, env.unlockRepo, env.clock)
	env.avatarSvc = service.NewAvatarService(db, env.accountRepo, env.progressRepo, env.avatarRepo, env.clock)
	return env
}

// register は初期アイテム付きのアカウントを登録します。
func (e *ledgerEnv) register(t *testing.T, name string) *model.Account {
	t.Helper()
	a, err := e.accountSvc.Register(context.Background(), &model.RegisterRequest{
		Name:     name,
		Email:    name + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return a
}

func (e *ledgerEnv) account(t *testing.T, id uuid.UUID) *model.Account {
	t.Helper()
	var a model.Account
	require.NoError(t, e.db.First(&a, "account_id = ?", id).Error)
	return &a
}

func (e *ledgerEnv) progress(t *testing.T, id uuid.UUID) *model.ProgressCounters {
	t.Helper()
	var pc model.ProgressCounters
	require.NoError(t, e.db.First(&pc, "account_id = ?", id).Error)
	return &pc
}

// setLedger はテストの前提となる台帳の値を直接書き込みます。
func (e *ledgerEnv) setLedger(t *testing.T, id uuid.UUID, values map[string]interface{}) {
	t.Helper()
	require.NoError(t, e.db.Model(&model.Account{}).Where("account_id = ?", id).Updates(values).Error)
}

// item は value で指定したカタログアイテムを返します。
func (e *ledgerEnv) item(t *testing.T, value string) *model.CatalogItem {
	t.Helper()
	var item model.CatalogItem
	require.NoError(t, e.db.First(&item, "value = ?", value).Error)
	return &item
}

func (e *ledgerEnv) count(t *testing.T, m interface{}, id uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(m).Where("account_id = ?", id).Count(&n).Error)
	return n
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *model.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, code, appErr.Detail.Code)
	}
}
