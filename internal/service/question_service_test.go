package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewSessionStripsAnswers(t *testing.T) {
	bank := &fakeQuestionBank{questions: questionSet(2, 12, "Fiscal Policy")}
	adaptive := NewAdaptiveService(bank, newFakeProgressStore(), newFakeSessionStore(), testQuizConfig())
	adaptive.Seed(42)

	svc := NewQuestionService(nil, adaptive)

	preview, err := svc.PreviewSession(2, 5)
	require.NoError(t, err)
	require.Len(t, preview, 5)

	for _, q := range preview {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Text)
		assert.Len(t, q.Options, 4)
		assert.Equal(t, 2, q.DifficultyLevel)
	}
}

func TestPreviewSessionEmptyPool(t *testing.T) {
	adaptive := NewAdaptiveService(&fakeQuestionBank{}, newFakeProgressStore(), newFakeSessionStore(), testQuizConfig())
	svc := NewQuestionService(nil, adaptive)

	preview, err := svc.PreviewSession(2, 5)
	require.NoError(t, err)
	assert.Empty(t, preview)
}
