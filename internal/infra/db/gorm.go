package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/internal/domain/model"
)

// Connect はDBに接続して *gorm.DB を返す。
// dsnはconfig.PostgresDSN()（DATABASE_URL優先）
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if !debug {
		cfg.Logger = logger.Default.LogMode(logger.Warn)
	}
	return gorm.Open(postgres.Open(dsn), cfg)
}

// テーブル作成
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
	)
}
