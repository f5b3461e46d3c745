package database

import (
	"econ_quiz_backend/internal/config"
	"econ_quiz_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuizSession{},
		&model.UserProgress{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed the question bank on an empty database.
	var count int64
	db.Model(&model.Question{}).Count(&count)
	if count == 0 {
		for _, q := range SeedQuestions() {
			if errs := model.ValidateQuestion(&q); len(errs) > 0 {
				return nil, fmt.Errorf("invalid seed question %q: %v", q.Text, errs[0])
			}
			if err := db.Create(&q).Error; err != nil {
				return nil, err
			}
		}
		log.Println("Seeded question bank")
	}

	return db, nil
}
