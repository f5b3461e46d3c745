package repository

import (
	"econ_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.QuizSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByIDAndUser(id string, userID uint) (*model.QuizSession, error) {
	var session model.QuizSession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	return &session, err
}

func (r *SessionRepository) Update(session *model.QuizSession) error {
	return r.DB.Save(session).Error
}

// FindRecentByUser lists sessions newest-completed first. Open sessions have
// no completion time and sort last, newest created first.
func (r *SessionRepository) FindRecentByUser(userID uint, limit int) ([]model.QuizSession, error) {
	var sessions []model.QuizSession
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC, created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// FindRecentCompletedByUser returns only submitted sessions, newest first by
// completion time. Unsubmitted sessions carry no score and are skipped.
func (r *SessionRepository) FindRecentCompletedByUser(userID uint, limit int) ([]model.QuizSession, error) {
	var sessions []model.QuizSession
	err := r.DB.Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
