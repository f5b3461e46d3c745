package repository

import (
	"econ_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByDifficulty(level int) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("difficulty_level = ?", level).Find(&questions).Error
	return questions, err
}

// FindByDifficultyIn returns questions at any of the given levels, excluding
// already-drawn IDs. Used for backfilling an under-populated pool.
func (r *QuestionRepository) FindByDifficultyIn(levels []int, excludeIDs []string) ([]model.Question, error) {
	var questions []model.Question
	query := r.DB.Where("difficulty_level IN ?", levels)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	err := query.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

// FindFiltered returns all questions matching the optional difficulty and
// topic filters. Random sampling is done by the caller, not the database.
func (r *QuestionRepository) FindFiltered(difficulty int, topic string) ([]model.Question, error) {
	var questions []model.Question
	query := r.DB.Model(&model.Question{})
	if difficulty > 0 {
		query = query.Where("difficulty_level = ?", difficulty)
	}
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	err := query.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) DistinctTopics() ([]string, error) {
	var topics []string
	err := r.DB.Model(&model.Question{}).Distinct("topic").Order("topic").Pluck("topic", &topics).Error
	return topics, err
}
