package repository_test

import (
	"context"
	"testing"
	"time"

	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/repository"
	"go_5_pixel_ledger/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func migrate(db *gorm.DB) error {
	return repository.AutoMigrate(context.Background(), db)
}

type RepositoryTestSuite struct {
	suite.Suite
	ctx             context.Context
	db              *gorm.DB
	accountRepo     repository.AccountRepository
	progressRepo    repository.ProgressRepository
	catalogRepo     repository.CatalogRepository
	unlockRepo      repository.UnlockRepository
	sessionRepo     repository.SessionRepository
	gameRecordRepo  repository.GameRecordRepository
	achievementRepo repository.AchievementRepository
	avatarRepo      repository.AvatarRepository
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewSQLiteDB(s.T(), migrate)
	s.accountRepo = repository.NewGormAccountRepository()
	s.progressRepo = repository.NewGormProgressRepository()
	s.catalogRepo = repository.NewGormCatalogRepository()
	s.unlockRepo = repository.NewGormUnlockRepository()
	s.sessionRepo = repository.NewGormSessionRepository()
	s.gameRecordRepo = repository.NewGormGameRecordRepository()
	s.achievementRepo = repository.NewGormAchievementRepository()
	s.avatarRepo = repository.NewGormAvatarRepository()
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) seedCatalog() map[string]*model.CatalogItem {
	_, err := s.catalogRepo.Seed(s.ctx, s.db, model.DefaultCatalog())
	s.Require().NoError(err)
	items, err := s.catalogRepo.List(s.ctx, s.db)
	s.Require().NoError(err)
	byValue := make(map[string]*model.CatalogItem, len(items))
	for _, it := range items {
		byValue[it.Value] = it
	}
	return byValue
}

func (s *RepositoryTestSuite) TestAccount_CreateAndFind() {
	a := model.NewAccount("alice", "alice@example.com", "hash")
	s.Require().NoError(s.accountRepo.Create(s.ctx, s.db, a))

	found, err := s.accountRepo.FindByEmail(s.ctx, s.db, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(a.AccountID, found.AccountID)
	s.Equal(model.InitialCoinBalance, found.CoinBalance)
	s.Equal(model.InitialLevel, found.Level)

	byName, err := s.accountRepo.FindByName(s.ctx, s.db, "alice")
	s.Require().NoError(err)
	s.Equal(a.AccountID, byName.AccountID)

	s.Run("異常系: メールアドレス重複は ErrConflict", func() {
		dup := model.NewAccount("alice2", "alice@example.com", "hash")
		s.ErrorIs(s.accountRepo.Create(s.ctx, s.db, dup), model.ErrConflict)
	})

	s.Run("異常系: 存在しないIDは ErrNotFound", func() {
		_, err := s.accountRepo.FindByID(s.ctx, s.db, uuid.New())
		s.ErrorIs(err, model.ErrNotFound)
	})
}

func (s *RepositoryTestSuite) TestAccount_UpdateLedgerWritesOnlyLedgerColumns() {
	a := testutil.SeedAccount(s.T(), s.db, "bob")

	a.Experience = 250
	a.Level = 3
	a.CoinBalance = 200
	a.StreakLength = 1
	a.Name = "renamed"
	s.Require().NoError(s.accountRepo.UpdateLedger(s.ctx, s.db, a))

	found, err := s.accountRepo.FindByID(s.ctx, s.db, a.AccountID)
	s.Require().NoError(err)
	s.Equal(250, found.Experience)
	s.Equal(3, found.Level)
	s.Equal(200, found.CoinBalance)
	s.Equal(1, found.StreakLength)
	s.Equal("bob", found.Name)

	s.ErrorIs(s.accountRepo.UpdateLedger(s.ctx, s.db, &model.Account{AccountID: uuid.New()}), model.ErrNotFound)
}

func (s *RepositoryTestSuite) TestAccount_FindByIDForUpdateInTransaction() {
	a := testutil.SeedAccount(s.T(), s.db, "carol")

	err := s.db.Transaction(func(tx *gorm.DB) error {
		locked, err := s.accountRepo.FindByIDForUpdate(s.ctx, tx, a.AccountID)
		if err != nil {
			return err
		}
		locked.CoinBalance -= 30
		return s.accountRepo.UpdateLedger(s.ctx, tx, locked)
	})
	s.Require().NoError(err)

	found, err := s.accountRepo.FindByID(s.ctx, s.db, a.AccountID)
	s.Require().NoError(err)
	s.Equal(model.InitialCoinBalance-30, found.CoinBalance)
}

func (s *RepositoryTestSuite) TestProgress_GetOrCreateIsIdempotent() {
	a := testutil.SeedAccount(s.T(), s.db, "dave")

	first, err := s.progressRepo.GetOrCreate(s.ctx, s.db, a.AccountID)
	s.Require().NoError(err)
	s.Zero(first.GamesPlayed)

	first.GamesPlayed = 3
	first.AvatarsCreated = 1
	s.Require().NoError(s.progressRepo.Update(s.ctx, s.db, first))

	second, err := s.progressRepo.GetOrCreate(s.ctx, s.db, a.AccountID)
	s.Require().NoError(err)
	s.Equal(3, second.GamesPlayed)
	s.Equal(1, second.AvatarsCreated)

	var count int64
	s.Require().NoError(s.db.Model(&model.ProgressCounters{}).Where("account_id = ?", a.AccountID).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *RepositoryTestSuite) TestCatalog_SeedIsIdempotent() {
	inserted, err := s.catalogRepo.Seed(s.ctx, s.db, model.DefaultCatalog())
	s.Require().NoError(err)
	s.Equal(len(model.DefaultCatalog()), inserted)

	inserted, err = s.catalogRepo.Seed(s.ctx, s.db, model.DefaultCatalog())
	s.Require().NoError(err)
	s.Zero(inserted)

	defaults, err := s.catalogRepo.FindDefaults(s.ctx, s.db)
	s.Require().NoError(err)
	s.Len(defaults, 5)

	rewards, err := s.catalogRepo.FindRewardsOf(s.ctx, s.db, model.AchievementLegendStatus)
	s.Require().NoError(err)
	s.Require().Len(rewards, 1)
	s.Equal("Kurt", rewards[0].Value)
	s.False(rewards[0].Purchasable())

	_, err = s.catalogRepo.FindByID(s.ctx, s.db, 9999)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositoryTestSuite) TestCatalog_SeedAfterUnlocksExist() {
	items := s.seedCatalog()
	a := testutil.SeedAccount(s.T(), s.db, "noah")
	b := testutil.SeedAccount(s.T(), s.db, "olga")
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// 複数アカウントが同じアイテムを所有していてもカタログ側は制約を受けない
	s.Require().NoError(s.unlockRepo.Create(s.ctx, s.db, model.NewUnlockRecord(a.AccountID, items["Brown"], model.UnlockMethodDefault, now)))
	s.Require().NoError(s.unlockRepo.Create(s.ctx, s.db, model.NewUnlockRecord(b.AccountID, items["Brown"], model.UnlockMethodDefault, now)))

	s.False(s.db.Migrator().HasConstraint(&model.CatalogItem{}, "fk_unlock_records_item"))

	extra := model.CatalogItem{Style: model.DefaultAvatarStyle, Category: "hairColor", Value: "Auburn", UnlockLevel: 2, UnlockCost: 30, Rarity: model.RarityCommon}
	inserted, err := s.catalogRepo.Seed(s.ctx, s.db, append(model.DefaultCatalog(), extra))
	s.Require().NoError(err)
	s.Equal(1, inserted)

	all, err := s.catalogRepo.List(s.ctx, s.db)
	s.Require().NoError(err)
	s.Len(all, len(model.DefaultCatalog())+1)
}

func (s *RepositoryTestSuite) TestUnlock_OwnershipAndEquip() {
	items := s.seedCatalog()
	a := testutil.SeedAccount(s.T(), s.db, "erin")
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	short := model.NewUnlockRecord(a.AccountID, items["ShortHairShortFlat"], model.UnlockMethodDefault, now)
	long := model.NewUnlockRecord(a.AccountID, items["LongHairStraight"], model.UnlockMethodDefault, now)
	s.Require().NoError(s.unlockRepo.Create(s.ctx, s.db, short))
	s.Require().NoError(s.unlockRepo.Create(s.ctx, s.db, long))

	s.Run("異常系: 同じアイテムの二重所有は ErrConflict", func() {
		dup := model.NewUnlockRecord(a.AccountID, items["ShortHairShortFlat"], model.UnlockMethodPurchase, now)
		s.ErrorIs(s.unlockRepo.Create(s.ctx, s.db, dup), model.ErrConflict)
	})

	owned, err := s.unlockRepo.Exists(s.ctx, s.db, a.AccountID, items["ShortHairShortFlat"])
	s.Require().NoError(err)
	s.True(owned)
	owned, err = s.unlockRepo.Exists(s.ctx, s.db, a.AccountID, items["Sunglasses"])
	s.Require().NoError(err)
	s.False(owned)

	n, err := s.unlockRepo.CountByMethod(s.ctx, s.db, a.AccountID, model.UnlockMethodDefault)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	// short を装備してから long に付け替える
	s.Require().NoError(s.unlockRepo.SetEquipped(s.ctx, s.db, short.UnlockID, true))
	s.Require().NoError(s.unlockRepo.UnequipSlot(s.ctx, s.db, a.AccountID, long.Style, long.Category))
	s.Require().NoError(s.unlockRepo.SetEquipped(s.ctx, s.db, long.UnlockID, true))

	list, err := s.unlockRepo.ListByAccount(s.ctx, s.db, a.AccountID)
	s.Require().NoError(err)
	equipped := 0
	for _, u := range list {
		if u.IsEquipped {
			equipped++
			s.Equal(long.UnlockID, u.UnlockID)
		}
	}
	s.Equal(1, equipped)

	s.ErrorIs(s.unlockRepo.SetEquipped(s.ctx, s.db, uuid.New(), true), model.ErrNotFound)
	_, err = s.unlockRepo.FindByID(s.ctx, s.db, uuid.New())
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositoryTestSuite) TestGameRecord_RecordPlayAndFavorite() {
	a := testutil.SeedAccount(s.T(), s.db, "frank")
	t1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	rec, err := s.gameRecordRepo.RecordPlay(s.ctx, s.db, a.AccountID, "memory-match", 300, true, t1)
	s.Require().NoError(err)
	s.Equal(1, rec.TimesPlayed)

	rec, err = s.gameRecordRepo.RecordPlay(s.ctx, s.db, a.AccountID, "memory-match", 120, false, t1.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(2, rec.TimesPlayed)
	s.Equal(300, rec.PersonalBest)
	s.True(rec.Completed)

	fav, err := s.gameRecordRepo.ToggleFavorite(s.ctx, s.db, a.AccountID, "ninja")
	s.Require().NoError(err)
	s.True(fav)
	fav, err = s.gameRecordRepo.ToggleFavorite(s.ctx, s.db, a.AccountID, "ninja")
	s.Require().NoError(err)
	s.False(fav)

	recs, err := s.gameRecordRepo.ListByAccount(s.ctx, s.db, a.AccountID)
	s.Require().NoError(err)
	s.Len(recs, 2)

	_, err = s.gameRecordRepo.Find(s.ctx, s.db, a.AccountID, "rhythm")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositoryTestSuite) TestSession_ListRecentNewestFirst() {
	a := testutil.SeedAccount(s.T(), s.db, "grace")
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		sess := &model.GameSession{
			SessionID:      uuid.New(),
			AccountID:      a.AccountID,
			GameIdentifier: "word-search",
			Score:          i,
			PlayedAt:       base.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.sessionRepo.Create(s.ctx, s.db, sess))
	}

	recent, err := s.sessionRepo.ListRecent(s.ctx, s.db, a.AccountID, 3)
	s.Require().NoError(err)
	s.Require().Len(recent, 3)
	s.Equal(4, recent[0].Score)
	s.Equal(2, recent[2].Score)
}

func (s *RepositoryTestSuite) TestAchievementClaim_Unique() {
	a := testutil.SeedAccount(s.T(), s.db, "heidi")
	claim := &model.AchievementClaim{AccountID: a.AccountID, AchievementID: model.AchievementFirstSteps, ClaimedAt: time.Now()}
	s.Require().NoError(s.achievementRepo.CreateClaim(s.ctx, s.db, claim))

	exists, err := s.achievementRepo.ClaimExists(s.ctx, s.db, a.AccountID, model.AchievementFirstSteps)
	s.Require().NoError(err)
	s.True(exists)

	dup := &model.AchievementClaim{AccountID: a.AccountID, AchievementID: model.AchievementFirstSteps, ClaimedAt: time.Now()}
	s.ErrorIs(s.achievementRepo.CreateClaim(s.ctx, s.db, dup), model.ErrConflict)

	claims, err := s.achievementRepo.ListClaims(s.ctx, s.db, a.AccountID)
	s.Require().NoError(err)
	s.Len(claims, 1)
}

func (s *RepositoryTestSuite) TestAccount_DeleteRemovesOwnedRecords() {
	items := s.seedCatalog()
	a := testutil.SeedAccount(s.T(), s.db, "ivan")
	other := testutil.SeedAccount(s.T(), s.db, "judy")
	now := time.Now()

	_, err := s.progressRepo.GetOrCreate(s.ctx, s.db, a.AccountID)
	s.Require().NoError(err)
	s.Require().NoError(s.unlockRepo.Create(s.ctx, s.db, model.NewUnlockRecord(a.AccountID, items["Brown"], model.UnlockMethodDefault, now)))
	s.Require().NoError(s.unlockRepo.Create(s.ctx, s.db, model.NewUnlockRecord(other.AccountID, items["Brown"], model.UnlockMethodDefault, now)))
	s.Require().NoError(s.avatarRepo.Create(s.ctx, s.db, &model.AvatarPreset{PresetID: uuid.New(), AccountID: a.AccountID, Name: "p", Style: model.DefaultAvatarStyle, Seed: "x", CreatedAt: now}))
	_, err = s.gameRecordRepo.RecordPlay(s.ctx, s.db, a.AccountID, "memory-match", 1, false, now)
	s.Require().NoError(err)

	s.Require().NoError(s.accountRepo.Delete(s.ctx, s.db, a.AccountID))

	for _, m := range []interface{}{&model.ProgressCounters{}, &model.UnlockRecord{}, &model.AvatarPreset{}, &model.GameRecord{}} {
		var n int64
		s.Require().NoError(s.db.Model(m).Where("account_id = ?", a.AccountID).Count(&n).Error)
		s.Zero(n, "%T", m)
	}

	var otherUnlocks int64
	s.Require().NoError(s.db.Model(&model.UnlockRecord{}).Where("account_id = ?", other.AccountID).Count(&otherUnlocks).Error)
	s.Equal(int64(1), otherUnlocks)

	s.ErrorIs(s.accountRepo.Delete(s.ctx, s.db, a.AccountID), model.ErrNotFound)
}
