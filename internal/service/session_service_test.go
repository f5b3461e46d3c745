package service

import (
	"econ_quiz_backend/internal/model"
	"econ_quiz_backend/internal/util"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	users    *fakeUserStore
	sessions *fakeSessionStore
	bank     *fakeQuestionBank
	progress *fakeProgressStore
	svc      *SessionService
}

func newSessionFixture(t *testing.T, user *model.User, questions []model.Question) *sessionFixture {
	t.Helper()

	users := newFakeUserStore(user)
	sessions := newFakeSessionStore()
	bank := &fakeQuestionBank{questions: questions}
	progress := newFakeProgressStore()

	adaptive := NewAdaptiveService(bank, progress, sessions, testQuizConfig())
	adaptive.Seed(42)

	return &sessionFixture{
		users:    users,
		sessions: sessions,
		bank:     bank,
		progress: progress,
		svc:      NewSessionService(users, sessions, bank, adaptive, 10),
	}
}

// answersFor builds a submission scoring correctCount out of the session's
// questions, looked up by stored id.
func (f *sessionFixture) answersFor(t *testing.T, sessionID string, correctCount int) []int {
	t.Helper()

	session := f.sessions.sessions[sessionID]
	require.NotNil(t, session)

	byID := make(map[string]model.Question)
	for _, q := range f.bank.questions {
		byID[q.ID] = q
	}

	answers := make([]int, len(session.Questions))
	for i, id := range session.Questions {
		q, ok := byID[id]
		require.True(t, ok)
		if i < correctCount {
			answers[i] = q.CorrectAnswer
		} else {
			answers[i] = (q.CorrectAnswer + 1) % 4
		}
	}
	return answers
}

func intermediateUser(id uint) *model.User {
	return &model.User{
		BaseModel:              model.BaseModel{ID: id},
		FirstName:              "Ada",
		LastName:               "Marshall",
		Email:                  "ada@example.com",
		CurrentDifficultyLevel: model.LevelIntermediate,
	}
}

func TestCreateSessionPersistsBeforeReturning(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	assert.NotEmpty(t, created.SessionID)
	assert.Equal(t, model.LevelIntermediate, created.DifficultyLevel)
	require.Len(t, created.Questions, 10)

	stored := f.sessions.sessions[created.SessionID]
	require.NotNil(t, stored)
	assert.Equal(t, uint(7), stored.UserID)
	assert.Len(t, stored.Questions, 10)
	assert.Empty(t, stored.Answers)
	assert.Nil(t, stored.CompletedAt)
	assert.Equal(t, model.LevelIntermediate, stored.DifficultyLevel)
}

func TestCreateSessionStripsAnswers(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	for _, q := range created.Questions {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Text)
		assert.Len(t, q.Options, 4)
	}
}

func TestCreateSessionUserNotFound(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	_, err := f.svc.CreateSession(99)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestCreateSessionNoQuestionsAvailable(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), nil)

	_, err := f.svc.CreateSession(7)
	assert.ErrorIs(t, err, util.ErrNoQuestionsAvailable)
}

func TestSubmitSessionFullFlow(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	// 9 of 10 correct scores 90, at or above the promote threshold.
	answers := f.answersFor(t, created.SessionID, 9)
	result, err := f.svc.SubmitSession(7, created.SessionID, answers, 240)
	require.NoError(t, err)

	assert.Equal(t, created.SessionID, result.SessionID)
	assert.InDelta(t, 90.0, result.Score, 0.0001)
	assert.Equal(t, 10, result.TotalQuestions)
	assert.Equal(t, 9, result.CorrectAnswers)
	assert.Equal(t, 240, result.TimeSpent)
	assert.Equal(t, model.LevelIntermediate, result.OldDifficultyLevel)
	assert.Equal(t, model.LevelAdvanced, result.NewDifficultyLevel)

	user, err := f.users.FindByID(7)
	require.NoError(t, err)
	assert.Equal(t, model.LevelAdvanced, user.CurrentDifficultyLevel)

	stored := f.sessions.sessions[created.SessionID]
	require.NotNil(t, stored)
	require.NotNil(t, stored.CompletedAt)
	assert.InDelta(t, 90.0, stored.Score, 0.0001)
	assert.Equal(t, 240, stored.TimeSpent)

	progress := f.progress.get(7, "Fiscal Policy")
	require.NotNil(t, progress)
	assert.Equal(t, 9, progress.CorrectAnswers)
	assert.Equal(t, 10, progress.TotalAnswers)
	assert.InDelta(t, 90.0, progress.Accuracy, 0.0001)

	require.Len(t, result.Results, 10)
	for i, r := range result.Results {
		assert.Equal(t, answers[i], r.UserAnswer)
		assert.Equal(t, i < 9, r.IsCorrect)
		assert.Equal(t, "Fiscal Policy", r.Topic)
		assert.NotEmpty(t, r.Question)
	}
}

func TestSubmitSessionDemotes(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	// 4 of 10 correct scores 40, at the demote threshold.
	result, err := f.svc.SubmitSession(7, created.SessionID, f.answersFor(t, created.SessionID, 4), 120)
	require.NoError(t, err)

	assert.Equal(t, model.LevelIntermediate, result.OldDifficultyLevel)
	assert.Equal(t, model.LevelBeginner, result.NewDifficultyLevel)

	user, err := f.users.FindByID(7)
	require.NoError(t, err)
	assert.Equal(t, model.LevelBeginner, user.CurrentDifficultyLevel)
}

func TestSubmitSessionMidBandKeepsLevel(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	result, err := f.svc.SubmitSession(7, created.SessionID, f.answersFor(t, created.SessionID, 6), 120)
	require.NoError(t, err)

	assert.Equal(t, result.OldDifficultyLevel, result.NewDifficultyLevel)

	user, err := f.users.FindByID(7)
	require.NoError(t, err)
	assert.Equal(t, model.LevelIntermediate, user.CurrentDifficultyLevel)
}

func TestSubmitSessionScoresInPresentationOrder(t *testing.T) {
	// Distinct correct answers per question so a wrong ordering would change
	// the score.
	questions := []model.Question{
		{UUIDBase: model.UUIDBase{ID: "q-a"}, Text: "A", Options: model.StringSlice{"1", "2", "3", "4"}, CorrectAnswer: 0, Topic: "Fiscal Policy", DifficultyLevel: 2},
		{UUIDBase: model.UUIDBase{ID: "q-b"}, Text: "B", Options: model.StringSlice{"1", "2", "3", "4"}, CorrectAnswer: 1, Topic: "Fiscal Policy", DifficultyLevel: 2},
		{UUIDBase: model.UUIDBase{ID: "q-c"}, Text: "C", Options: model.StringSlice{"1", "2", "3", "4"}, CorrectAnswer: 2, Topic: "Fiscal Policy", DifficultyLevel: 2},
	}
	f := newSessionFixture(t, intermediateUser(7), questions)
	f.svc.questionsPerSession = 3

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	result, err := f.svc.SubmitSession(7, created.SessionID, f.answersFor(t, created.SessionID, 3), 60)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, result.Score, 0.0001)

	stored := f.sessions.sessions[created.SessionID]
	for i, r := range result.Results {
		assert.Equal(t, stored.Questions[i], r.QuestionID)
	}
}

func TestSubmitSessionNotFound(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	_, err := f.svc.SubmitSession(7, "missing-session", []int{0}, 60)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSubmitSessionWrongUser(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	_, err = f.svc.SubmitSession(99, created.SessionID, f.answersFor(t, created.SessionID, 5), 60)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSubmitSessionTwiceRejected(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	answers := f.answersFor(t, created.SessionID, 5)
	_, err = f.svc.SubmitSession(7, created.SessionID, answers, 60)
	require.NoError(t, err)

	_, err = f.svc.SubmitSession(7, created.SessionID, answers, 60)
	assert.ErrorIs(t, err, util.ErrSessionSubmitted)

	// The replay must not have touched progress again.
	progress := f.progress.get(7, "Fiscal Policy")
	require.NotNil(t, progress)
	assert.Equal(t, 10, progress.TotalAnswers)
}

func TestSubmitSessionAnswerCountMismatch(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	_, err = f.svc.SubmitSession(7, created.SessionID, []int{0, 1, 2}, 60)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.NotEmpty(t, vErr.Violations)
	assert.Equal(t, "answers", vErr.Violations[0].Field)

	stored := f.sessions.sessions[created.SessionID]
	assert.Nil(t, stored.CompletedAt)
	assert.Equal(t, 0, f.progress.upserts)
}

func TestSubmitSessionAnswerOutOfRange(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	created, err := f.svc.CreateSession(7)
	require.NoError(t, err)

	answers := f.answersFor(t, created.SessionID, 5)
	answers[0] = 4

	_, err = f.svc.SubmitSession(7, created.SessionID, answers, 60)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
}

func TestUserSessionsMostRecentlyCompletedFirst(t *testing.T) {
	f := newSessionFixture(t, intermediateUser(7), questionSet(2, 12, "Fiscal Policy"))

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		done := base.Add(time.Duration(i) * time.Hour)
		session := &model.QuizSession{UserID: 7, Score: 70, CompletedAt: &done}
		require.NoError(t, f.sessions.Create(session))
		ids = append(ids, session.ID)
	}
	open := &model.QuizSession{UserID: 7}
	require.NoError(t, f.sessions.Create(open))

	sessions, err := f.svc.UserSessions(7, 3)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, ids[2], sessions[0].ID)
	assert.Equal(t, ids[1], sessions[1].ID)
	assert.Equal(t, ids[0], sessions[2].ID)

	// With room, open sessions trail the completed ones.
	sessions, err = f.svc.UserSessions(7, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 4)
	assert.Equal(t, open.ID, sessions[3].ID)
}
