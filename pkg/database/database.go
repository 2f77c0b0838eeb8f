package database

import (
	"log"

	"curso_feedback_backend/internal/config"
	"curso_feedback_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 打开SQLite数据文件并确保feedbacks表存在。
// AutoMigrate是幂等的，每次启动都可以安全调用；失败时由调用方终止启动。
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Database opened at %s", cfg.Path)

	if err := db.AutoMigrate(&model.Feedback{}); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
