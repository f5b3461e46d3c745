package repository

import (
	"econ_quiz_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndTopic(userID uint, topic string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND topic = ?", userID, topic).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.UserProgress, error) {
	var progress []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).
		Order("accuracy ASC").
		Find(&progress).Error
	return progress, err
}

// Upsert accumulates one session's per-topic increments in a single
// INSERT ... ON DUPLICATE KEY UPDATE over the (user_id, topic) unique index.
// The accuracy expression reads the pre-update counts, so concurrent
// submissions for the same user and topic cannot lose updates.
func (r *ProgressRepository) Upsert(userID uint, topic string, correctInc, totalInc int) error {
	progress := model.UserProgress{
		UserID:         userID,
		Topic:          topic,
		CorrectAnswers: correctInc,
		TotalAnswers:   totalInc,
		Accuracy:       float64(correctInc) / float64(totalInc) * 100,
		LastUpdated:    time.Now(),
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "topic"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"accuracy":        gorm.Expr("(correct_answers + ?) / (total_answers + ?) * 100", correctInc, totalInc),
			"correct_answers": gorm.Expr("correct_answers + ?", correctInc),
			"last_updated":    time.Now(),
			"total_answers":   gorm.Expr("total_answers + ?", totalInc),
		}),
	}).Create(&progress).Error
}

// FindWeakest returns the lowest-accuracy topics with at least minAnswers
// attempts. Topics below the floor are not informative enough to flag.
func (r *ProgressRepository) FindWeakest(userID uint, minAnswers, limit int) ([]model.UserProgress, error) {
	var progress []model.UserProgress
	err := r.DB.Where("user_id = ? AND total_answers >= ?", userID, minAnswers).
		Order("accuracy ASC").
		Limit(limit).
		Find(&progress).Error
	return progress, err
}
