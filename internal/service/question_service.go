package service

import (
	"econ_quiz_backend/internal/model"
	"econ_quiz_backend/internal/repository"
	"math/rand"
	"sync"
	"time"
)

// QuestionService covers question browsing and authoring. Random sampling
// for listings happens here, not in the database.
type QuestionService struct {
	Repo     *repository.QuestionRepository
	Adaptive *AdaptiveService

	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuestionService(repo *repository.QuestionRepository, adaptive *AdaptiveService) *QuestionService {
	return &QuestionService{
		Repo:     repo,
		Adaptive: adaptive,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// List returns up to limit questions matching the optional filters, in
// random order.
func (s *QuestionService) List(difficulty int, topic string, limit int) ([]model.Question, error) {
	questions, err := s.Repo.FindFiltered(difficulty, topic)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	s.mu.Unlock()

	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

func (s *QuestionService) Topics() ([]string, error) {
	return s.Repo.DistinctTopics()
}

// Create validates and persists an authored question. Questions are
// immutable once stored.
func (s *QuestionService) Create(question *model.Question) []model.FieldError {
	if violations := model.ValidateQuestion(question); len(violations) > 0 {
		return violations
	}
	if err := s.Repo.Create(question); err != nil {
		return []model.FieldError{{Field: "question", Message: err.Error()}}
	}
	return nil
}

// PreviewSession exposes an adaptive draw without creating a session, with
// correct answers stripped.
func (s *QuestionService) PreviewSession(level, count int) ([]model.QuizQuestion, error) {
	questions, err := s.Adaptive.SelectSessionQuestions(level, count)
	if err != nil {
		return nil, err
	}

	preview := make([]model.QuizQuestion, len(questions))
	for i, q := range questions {
		preview[i] = q.ForQuiz()
	}
	return preview, nil
}
