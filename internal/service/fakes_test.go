package service

import (
	"econ_quiz_backend/internal/config"
	"econ_quiz_backend/internal/model"
	"econ_quiz_backend/pkg/logger"
	"fmt"
	"os"
	"sort"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func testQuizConfig() *config.QuizConfig {
	return &config.QuizConfig{
		QuestionsPerSession: 10,
		PromoteThreshold:    80,
		DemoteThreshold:     40,
	}
}

// fakeQuestionBank implements QuestionPool and QuestionLookup over an
// in-memory slice.
type fakeQuestionBank struct {
	questions []model.Question
}

func (f *fakeQuestionBank) FindByDifficulty(level int) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.DifficultyLevel == level {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionBank) FindByDifficultyIn(levels []int, excludeIDs []string) ([]model.Question, error) {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	wanted := make(map[int]bool, len(levels))
	for _, l := range levels {
		wanted[l] = true
	}

	var out []model.Question
	for _, q := range f.questions {
		if wanted[q.DifficultyLevel] && !excluded[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionBank) FindByIDs(ids []string) ([]model.Question, error) {
	byID := make(map[string]model.Question, len(f.questions))
	for _, q := range f.questions {
		byID[q.ID] = q
	}

	var out []model.Question
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// fakeProgressStore mirrors the repository's accumulate-and-recompute
// semantics in memory.
type fakeProgressStore struct {
	records map[string]*model.UserProgress
	upserts int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[string]*model.UserProgress)}
}

func progressKey(userID uint, topic string) string {
	return fmt.Sprintf("%d|%s", userID, topic)
}

func (f *fakeProgressStore) Upsert(userID uint, topic string, correctInc, totalInc int) error {
	f.upserts++
	key := progressKey(userID, topic)
	p, ok := f.records[key]
	if !ok {
		p = &model.UserProgress{UserID: userID, Topic: topic}
		f.records[key] = p
	}
	p.CorrectAnswers += correctInc
	p.TotalAnswers += totalInc
	p.Accuracy = float64(p.CorrectAnswers) / float64(p.TotalAnswers) * 100
	return nil
}

func (f *fakeProgressStore) get(userID uint, topic string) *model.UserProgress {
	return f.records[progressKey(userID, topic)]
}

func (f *fakeProgressStore) FindWeakest(userID uint, minAnswers, limit int) ([]model.UserProgress, error) {
	var out []model.UserProgress
	for _, p := range f.records {
		if p.UserID == userID && p.TotalAnswers >= minAnswers {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Accuracy < out[j].Accuracy })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProgressStore) FindByUser(userID uint) ([]model.UserProgress, error) {
	var out []model.UserProgress
	for _, p := range f.records {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Accuracy < out[j].Accuracy })
	return out, nil
}

// fakeSessionStore implements SessionStore and ScoreHistory.
type fakeSessionStore struct {
	sessions map[string]*model.QuizSession
	order    []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*model.QuizSession)}
}

func (f *fakeSessionStore) Create(session *model.QuizSession) error {
	if session.ID == "" {
		session.ID = model.GenerateUUID()
	}
	copied := *session
	f.sessions[session.ID] = &copied
	f.order = append(f.order, session.ID)
	return nil
}

func (f *fakeSessionStore) FindByIDAndUser(id string, userID uint) (*model.QuizSession, error) {
	s, ok := f.sessions[id]
	if !ok || s.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionStore) Update(session *model.QuizSession) error {
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeSessionStore) FindRecentByUser(userID uint, limit int) ([]model.QuizSession, error) {
	createdIdx := make(map[string]int, len(f.order))
	for i, id := range f.order {
		createdIdx[id] = i
	}

	var out []model.QuizSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	// Completed sessions first, newest completion first; open sessions last,
	// newest created first. Matches the repository's ordering.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.CompletedAt != nil && b.CompletedAt != nil:
			return a.CompletedAt.After(*b.CompletedAt)
		case a.CompletedAt != nil:
			return true
		case b.CompletedAt != nil:
			return false
		default:
			return createdIdx[a.ID] > createdIdx[b.ID]
		}
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSessionStore) FindRecentCompletedByUser(userID uint, limit int) ([]model.QuizSession, error) {
	var out []model.QuizSession
	for _, s := range f.sessions {
		if s.UserID == userID && s.CompletedAt != nil {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(*out[j].CompletedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeUserStore implements UserStore with the repository's SQL clamping.
type fakeUserStore struct {
	users map[uint]*model.User
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[uint]*model.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) ShiftDifficultyLevel(userID uint, direction int) error {
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	level := u.CurrentDifficultyLevel + direction
	if level < model.LevelBeginner {
		level = model.LevelBeginner
	}
	if level > model.LevelAdvanced {
		level = model.LevelAdvanced
	}
	u.CurrentDifficultyLevel = level
	return nil
}

// questionSet builds n questions at the given level, one topic each unless a
// topic is supplied.
func questionSet(level, n int, topic string) []model.Question {
	out := make([]model.Question, n)
	for i := range out {
		t := topic
		if t == "" {
			t = fmt.Sprintf("Topic %d", i)
		}
		out[i] = model.Question{
			UUIDBase:        model.UUIDBase{ID: fmt.Sprintf("q-%d-%d", level, i)},
			Text:            fmt.Sprintf("Question %d at level %d", i, level),
			Options:         model.StringSlice{"A", "B", "C", "D"},
			CorrectAnswer:   i % 4,
			Topic:           t,
			DifficultyLevel: level,
		}
	}
	return out
}
