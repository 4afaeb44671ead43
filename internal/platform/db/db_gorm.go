// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	blogadapters "blog_backend/internal/feature/blogs/adapters"
	"blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/platform/config"
)

// BuildDSN はConfigからPostgres接続用のDSN文字列を生成します。
func BuildDSN(cfg config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
}

// OpenDB はPostgresへ接続し、*gorm.DBを返します。
// 起動直後はDBコンテナが立ち上がっていない場合があるため、60秒までリトライします。
func OpenDB(cfg config.Config) *gorm.DB {
	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Blog）
		if err := db.AutoMigrate(
			&entity.User{},
			&blogadapters.BlogModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
