package service

import (
	"econ_quiz_backend/internal/config"
	"econ_quiz_backend/internal/model"
	"econ_quiz_backend/internal/util"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Topics need at least this many recorded answers before they are
// informative enough to report as a weakness.
const minInformativeAnswers = 3

// QuestionPool is the read side of the question bank the engine draws from.
type QuestionPool interface {
	FindByDifficulty(level int) ([]model.Question, error)
	FindByDifficultyIn(levels []int, excludeIDs []string) ([]model.Question, error)
}

// ProgressStore accumulates per-(user, topic) answer statistics.
type ProgressStore interface {
	Upsert(userID uint, topic string, correctInc, totalInc int) error
	FindWeakest(userID uint, minAnswers, limit int) ([]model.UserProgress, error)
	FindByUser(userID uint) ([]model.UserProgress, error)
}

// ScoreHistory is the read side of completed sessions.
type ScoreHistory interface {
	FindRecentCompletedByUser(userID uint, limit int) ([]model.QuizSession, error)
}

// AdaptiveService owns question selection, scoring, progress aggregation and
// the difficulty transition rule.
type AdaptiveService struct {
	Questions QuestionPool
	Progress  ProgressStore
	Sessions  ScoreHistory

	promoteAt float64
	demoteAt  float64

	// rng drives question shuffling; guarded because *rand.Rand is not
	// safe for concurrent use across requests.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAdaptiveService(questions QuestionPool, progress ProgressStore, sessions ScoreHistory, cfg *config.QuizConfig) *AdaptiveService {
	return &AdaptiveService{
		Questions: questions,
		Progress:  progress,
		Sessions:  sessions,
		promoteAt: cfg.PromoteThreshold,
		demoteAt:  cfg.DemoteThreshold,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed makes the shuffle reproducible. Test hook.
func (s *AdaptiveService) Seed(seed int64) {
	s.mu.Lock()
	s.rng = rand.New(rand.NewSource(seed))
	s.mu.Unlock()
}

func (s *AdaptiveService) shuffle(questions []model.Question) {
	s.mu.Lock()
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	s.mu.Unlock()
}

// backfillLevels returns the adjacent levels a short pool borrows from. The
// extremes only ever borrow from the middle level; the middle level borrows
// from both extremes. Intentionally asymmetric.
func backfillLevels(level int) []int {
	switch level {
	case model.LevelBeginner:
		return []int{model.LevelIntermediate}
	case model.LevelAdvanced:
		return []int{model.LevelIntermediate}
	default:
		return []int{model.LevelBeginner, model.LevelAdvanced}
	}
}

// SelectSessionQuestions draws count questions at random, without
// replacement, from the pool at the given level, backfilling from adjacent
// levels when the primary pool is short. The result may hold fewer than
// count questions when the combined pool is insufficient; the caller decides
// whether that is acceptable.
func (s *AdaptiveService) SelectSessionQuestions(level, count int) ([]model.Question, error) {
	questions, err := s.Questions.FindByDifficulty(level)
	if err != nil {
		return nil, err
	}
	s.shuffle(questions)

	if len(questions) < count {
		drawn := make([]string, len(questions))
		for i, q := range questions {
			drawn[i] = q.ID
		}

		extra, err := s.Questions.FindByDifficultyIn(backfillLevels(level), drawn)
		if err != nil {
			return nil, err
		}
		s.shuffle(extra)

		questions = append(questions, extra...)
	}

	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// ComputeScore returns the percentage of positions where the answer index
// matches the question's correct answer. Answers and questions correspond by
// position, not by id.
func (s *AdaptiveService) ComputeScore(answers []int, questions []model.Question) (float64, error) {
	if len(answers) == 0 {
		return 0, util.ErrEmptySubmission
	}
	if len(answers) != len(questions) {
		return 0, fmt.Errorf("answer count %d does not match question count %d", len(answers), len(questions))
	}

	correct := 0
	for i := range answers {
		if answers[i] == questions[i].CorrectAnswer {
			correct++
		}
	}
	return float64(correct) / float64(len(answers)) * 100, nil
}

// UpdateProgress folds one submitted session into the per-topic running
// counts. Each touched topic is written independently and atomically. Calling
// this twice for the same session double-counts; callers invoke it exactly
// once, at submission.
func (s *AdaptiveService) UpdateProgress(userID uint, questions []model.Question, answers []int) error {
	if len(answers) != len(questions) {
		return fmt.Errorf("answer count %d does not match question count %d", len(answers), len(questions))
	}

	type topicStat struct {
		correct int
		total   int
	}
	stats := make(map[string]*topicStat)

	for i, question := range questions {
		stat, ok := stats[question.Topic]
		if !ok {
			stat = &topicStat{}
			stats[question.Topic] = stat
		}
		stat.total++
		if answers[i] == question.CorrectAnswer {
			stat.correct++
		}
	}

	for topic, stat := range stats {
		if err := s.Progress.Upsert(userID, topic, stat.correct, stat.total); err != nil {
			return err
		}
	}
	return nil
}

// NextDifficultyLevel applies the transition rule: scoring at or above the
// promote threshold moves up, at or below the demote threshold moves down,
// anything between stays. Clamped to 1..3.
func (s *AdaptiveService) NextDifficultyLevel(currentLevel int, score float64) int {
	switch {
	case score >= s.promoteAt:
		if currentLevel >= model.LevelAdvanced {
			return model.LevelAdvanced
		}
		return currentLevel + 1
	case score <= s.demoteAt:
		if currentLevel <= model.LevelBeginner {
			return model.LevelBeginner
		}
		return currentLevel - 1
	default:
		return currentLevel
	}
}

// WeakestTopics returns up to limit topics ordered by ascending accuracy,
// considering only topics with enough attempts to be informative.
func (s *AdaptiveService) WeakestTopics(userID uint, limit int) ([]model.UserProgress, error) {
	return s.Progress.FindWeakest(userID, minInformativeAnswers, limit)
}

// RecentSessionScores returns the scores of the most recently completed
// sessions in chronological order, oldest first, for trend display.
func (s *AdaptiveService) RecentSessionScores(userID uint, limit int) ([]float64, error) {
	sessions, err := s.Sessions.FindRecentCompletedByUser(userID, limit)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(sessions))
	for i, session := range sessions {
		scores[len(sessions)-1-i] = session.Score
	}
	return scores, nil
}
