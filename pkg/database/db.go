package database

import (
	"Agora/config"
	"Agora/models"
	"Agora/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接并迁移表结构
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	if err := AutoMigrate(db); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// AutoMigrate 同步全部表结构，测试里对内存库复用
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Question{},
		&models.Answer{},
		&models.Comment{},
		&models.QuestionView{},
		&models.QuestionVoter{},
		&models.AnswerVoter{},
	)
}
