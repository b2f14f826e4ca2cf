// Package testutil はテスト用の SQLite データベースを用意します。
package testutil

import (
	"testing"

	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Migrator はマイグレーション関数。repository.AutoMigrate を渡す (import cycle 回避のため引数で受け取る)
type Migrator func(db *gorm.DB) error

// NewSQLiteDB はテストごとに独立したインメモリDBを作成し、migrate を適用します。
// 接続は1本に絞るため、トランザクション中に別の *gorm.DB でクエリを発行するとデッドロックする。
func NewSQLiteDB(t *testing.T, migrate Migrator) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if migrate != nil {
		if err := migrate(db); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}
	}
	return db
}

// SeedAccount は初期状態のアカウントを作成します。
func SeedAccount(t *testing.T, db *gorm.DB, name string) *model.Account {
	t.Helper()
	a := model.NewAccount(name, name+"@example.com", "hash")
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return a
}
