package service

import (
	"context"
	"econ_quiz_backend/internal/model"
	"econ_quiz_backend/internal/util"
	"econ_quiz_backend/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dashboardCacheKeyPrefix = "dashboard:summary:"

// DashboardService composes read-only reporting over progress and session
// history. Summaries are cached briefly in Redis; submission paths do not
// invalidate, the TTL bounds staleness.
type DashboardService struct {
	Users    UserStore
	Adaptive *AdaptiveService
	Redis    *redis.Client

	cacheTTL time.Duration
}

func NewDashboardService(users UserStore, adaptive *AdaptiveService, rdb *redis.Client, cacheTTLSeconds int) *DashboardService {
	return &DashboardService{
		Users:    users,
		Adaptive: adaptive,
		Redis:    rdb,
		cacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*model.DashboardData, error) {
	cacheKey := fmt.Sprintf("%s%d", dashboardCacheKeyPrefix, userID)

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached model.DashboardData
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	recentScores, err := s.Adaptive.RecentSessionScores(userID, 10)
	if err != nil {
		return nil, err
	}

	weakest, err := s.Adaptive.WeakestTopics(userID, 3)
	if err != nil {
		return nil, err
	}

	totalSessions := len(recentScores)
	averageScore := 0.0
	if totalSessions > 0 {
		sum := 0.0
		for _, score := range recentScores {
			sum += score
		}
		averageScore = sum / float64(totalSessions)
	}

	weakTopics := make([]model.WeakTopic, len(weakest))
	for i, p := range weakest {
		weakTopics[i] = model.WeakTopic{
			Topic:          p.Topic,
			Accuracy:       util.Round2(p.Accuracy),
			TotalAttempts:  p.TotalAnswers,
			CorrectAnswers: p.CorrectAnswers,
		}
	}

	data := &model.DashboardData{
		User: model.DashboardUser{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
		ProficiencyLevel: model.ProficiencyLevel{
			Level: user.CurrentDifficultyLevel,
			Label: model.DifficultyLabel(user.CurrentDifficultyLevel),
		},
		Stats: model.DashboardStats{
			TotalSessions: totalSessions,
			AverageScore:  util.Round2(averageScore),
			RecentScores:  recentScores,
		},
		WeakestTopics: weakTopics,
		Trends: model.ScoreTrends{
			ScoreHistory: recentScores,
		},
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(data); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				logger.Log.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return data, nil
}

// GetProgressAnalytics returns the full per-topic breakdown plus a 20-session
// score trend. Not cached; the topic list is unbounded per user anyway.
func (s *DashboardService) GetProgressAnalytics(userID uint) (*model.ProgressAnalytics, error) {
	allProgress, err := s.Adaptive.Progress.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	recentScores, err := s.Adaptive.RecentSessionScores(userID, 20)
	if err != nil {
		return nil, err
	}

	topicProgress := make([]model.TopicProgress, len(allProgress))
	totalQuestions := 0
	totalCorrect := 0
	accuracySum := 0.0
	for i, p := range allProgress {
		topicProgress[i] = model.TopicProgress{
			Topic:          p.Topic,
			Accuracy:       util.Round2(p.Accuracy),
			TotalAttempts:  p.TotalAnswers,
			CorrectAnswers: p.CorrectAnswers,
			LastUpdated:    p.LastUpdated,
		}
		totalQuestions += p.TotalAnswers
		totalCorrect += p.CorrectAnswers
		accuracySum += p.Accuracy
	}

	overallAccuracy := 0.0
	if len(allProgress) > 0 {
		overallAccuracy = util.Round2(accuracySum / float64(len(allProgress)))
	}

	return &model.ProgressAnalytics{
		TopicProgress: topicProgress,
		SessionTrends: recentScores,
		Summary: model.ProgressSummary{
			TotalTopicsStudied:  len(allProgress),
			OverallAccuracy:     overallAccuracy,
			TotalQuestionsSeen:  totalQuestions,
			TotalCorrectAnswers: totalCorrect,
		},
	}, nil
}
