package service

import (
	"econ_quiz_backend/internal/model"
	"econ_quiz_backend/internal/util"
	"econ_quiz_backend/pkg/logger"
	"econ_quiz_backend/pkg/monitoring"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserStore is the slice of the user repository the orchestrator needs.
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	ShiftDifficultyLevel(userID uint, direction int) error
}

// SessionStore persists quiz sessions.
type SessionStore interface {
	Create(session *model.QuizSession) error
	FindByIDAndUser(id string, userID uint) (*model.QuizSession, error)
	Update(session *model.QuizSession) error
	FindRecentByUser(userID uint, limit int) ([]model.QuizSession, error)
}

// QuestionLookup resolves stored question ids back to full questions.
type QuestionLookup interface {
	FindByIDs(ids []string) ([]model.Question, error)
}

// ValidationError carries the field-level violations of a rejected request.
type ValidationError struct {
	Violations []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Violations[0].Error()
}

// SessionCreation is the response to a session-start request. Questions are
// answer-stripped.
type SessionCreation struct {
	SessionID       string               `json:"sessionId"`
	Questions       []model.QuizQuestion `json:"questions"`
	DifficultyLevel int                  `json:"difficultyLevel"`
}

// QuestionResult is the per-question detail returned after submission,
// including the correct answer and explanation.
type QuestionResult struct {
	QuestionID    string            `json:"questionId"`
	Question      string            `json:"question"`
	Options       model.StringSlice `json:"options"`
	UserAnswer    int               `json:"userAnswer"`
	CorrectAnswer int               `json:"correctAnswer"`
	IsCorrect     bool              `json:"isCorrect"`
	Topic         string            `json:"topic"`
	Explanation   string            `json:"explanation,omitempty"`
}

type SessionResult struct {
	SessionID          string           `json:"sessionId"`
	Score              float64          `json:"score"`
	TotalQuestions     int              `json:"totalQuestions"`
	CorrectAnswers     int              `json:"correctAnswers"`
	TimeSpent          int              `json:"timeSpent"`
	OldDifficultyLevel int              `json:"oldDifficultyLevel"`
	NewDifficultyLevel int              `json:"newDifficultyLevel"`
	Results            []QuestionResult `json:"results"`
}

// SessionService orchestrates session creation and submission around the
// adaptive engine.
type SessionService struct {
	Users     UserStore
	Sessions  SessionStore
	Questions QuestionLookup
	Adaptive  *AdaptiveService

	questionsPerSession int
}

func NewSessionService(users UserStore, sessions SessionStore, questions QuestionLookup, adaptive *AdaptiveService, questionsPerSession int) *SessionService {
	return &SessionService{
		Users:               users,
		Sessions:            sessions,
		Questions:           questions,
		Adaptive:            adaptive,
		questionsPerSession: questionsPerSession,
	}
}

// CreateSession resolves the user's current level, draws a question set and
// persists the session before anything is returned to the client.
func (s *SessionService) CreateSession(userID uint) (*SessionCreation, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	questions, err := s.Adaptive.SelectSessionQuestions(user.CurrentDifficultyLevel, s.questionsPerSession)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuestionsAvailable
	}

	questionIDs := make(model.StringSlice, len(questions))
	quizQuestions := make([]model.QuizQuestion, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
		quizQuestions[i] = q.ForQuiz()
	}

	session := &model.QuizSession{
		UserID:          userID,
		Questions:       questionIDs,
		Answers:         model.IntSlice{},
		Score:           0,
		DifficultyLevel: user.CurrentDifficultyLevel,
		TimeSpent:       0,
	}

	if err := s.Sessions.Create(session); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz session created",
		zap.Uint("userId", userID),
		zap.String("sessionId", session.ID),
		zap.Int("level", user.CurrentDifficultyLevel),
		zap.Int("questions", len(questions)))

	return &SessionCreation{
		SessionID:       session.ID,
		Questions:       quizQuestions,
		DifficultyLevel: user.CurrentDifficultyLevel,
	}, nil
}

// SubmitSession scores the submission, writes the session exactly once, folds
// the results into per-topic progress and moves the user's difficulty level.
// Later steps are not compensated when an earlier one already persisted.
func (s *SessionService) SubmitSession(userID uint, sessionID string, answers []int, timeSpent int) (*SessionResult, error) {
	session, err := s.Sessions.FindByIDAndUser(sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	if violations := model.ValidateSubmission(session, answers); len(violations) > 0 {
		if session.Submitted() {
			return nil, util.ErrSessionSubmitted
		}
		return nil, &ValidationError{Violations: violations}
	}

	questions, err := s.questionsInOrder(session.Questions)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	score, err := s.Adaptive.ComputeScore(answers, questions)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.Answers = append(model.IntSlice{}, answers...)
	session.Score = score
	session.TimeSpent = timeSpent
	session.CompletedAt = &now

	if err := s.Sessions.Update(session); err != nil {
		return nil, err
	}

	if err := s.Adaptive.UpdateProgress(userID, questions, answers); err != nil {
		return nil, err
	}

	oldLevel := user.CurrentDifficultyLevel
	newLevel := s.Adaptive.NextDifficultyLevel(oldLevel, score)
	if newLevel != oldLevel {
		if err := s.Users.ShiftDifficultyLevel(userID, newLevel-oldLevel); err != nil {
			return nil, err
		}
		direction := "up"
		if newLevel < oldLevel {
			direction = "down"
		}
		monitoring.LevelTransitions.WithLabelValues(direction).Inc()
	}
	monitoring.SessionsCompleted.WithLabelValues(strconv.Itoa(session.DifficultyLevel)).Inc()

	results := make([]QuestionResult, len(questions))
	correctCount := 0
	for i, q := range questions {
		isCorrect := answers[i] == q.CorrectAnswer
		if isCorrect {
			correctCount++
		}
		results[i] = QuestionResult{
			QuestionID:    q.ID,
			Question:      q.Text,
			Options:       q.Options,
			UserAnswer:    answers[i],
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
			Topic:         q.Topic,
			Explanation:   q.Explanation,
		}
	}

	logger.Log.Info("quiz session submitted",
		zap.Uint("userId", userID),
		zap.String("sessionId", session.ID),
		zap.Float64("score", score),
		zap.Int("oldLevel", oldLevel),
		zap.Int("newLevel", newLevel))

	return &SessionResult{
		SessionID:          session.ID,
		Score:              score,
		TotalQuestions:     len(questions),
		CorrectAnswers:     correctCount,
		TimeSpent:          timeSpent,
		OldDifficultyLevel: oldLevel,
		NewDifficultyLevel: newLevel,
		Results:            results,
	}, nil
}

func (s *SessionService) UserSessions(userID uint, limit int) ([]model.QuizSession, error) {
	return s.Sessions.FindRecentByUser(userID, limit)
}

// questionsInOrder loads the session's questions and restores the order they
// were presented in. Scoring is positional, so order matters.
func (s *SessionService) questionsInOrder(ids model.StringSlice) ([]model.Question, error) {
	loaded, err := s.Questions.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Question, len(loaded))
	for _, q := range loaded {
		byID[q.ID] = q
	}

	ordered := make([]model.Question, len(ids))
	for i, id := range ids {
		q, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("session references missing question %s", id)
		}
		ordered[i] = q
	}
	return ordered, nil
}
