package model

import "time"

type ProficiencyLevel struct {
	Level int    `json:"level"`
	Label string `json:"label"`
}

type DashboardStats struct {
	TotalSessions int       `json:"totalSessions"`
	AverageScore  float64   `json:"averageScore"`
	RecentScores  []float64 `json:"recentScores"`
}

type WeakTopic struct {
	Topic          string  `json:"topic"`
	Accuracy       float64 `json:"accuracy"`
	TotalAttempts  int     `json:"totalAttempts"`
	CorrectAnswers int     `json:"correctAnswers"`
}

type ScoreTrends struct {
	ScoreHistory []float64 `json:"scoreHistory"`
}

type DashboardUser struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type DashboardData struct {
	User             DashboardUser    `json:"user"`
	ProficiencyLevel ProficiencyLevel `json:"proficiencyLevel"`
	Stats            DashboardStats   `json:"stats"`
	WeakestTopics    []WeakTopic      `json:"weakestTopics"`
	Trends           ScoreTrends      `json:"trends"`
}

type TopicProgress struct {
	Topic          string    `json:"topic"`
	Accuracy       float64   `json:"accuracy"`
	TotalAttempts  int       `json:"totalAttempts"`
	CorrectAnswers int       `json:"correctAnswers"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

type ProgressSummary struct {
	TotalTopicsStudied  int     `json:"totalTopicsStudied"`
	OverallAccuracy     float64 `json:"overallAccuracy"`
	TotalQuestionsSeen  int     `json:"totalQuestionsSeen"`
	TotalCorrectAnswers int     `json:"totalCorrectAnswers"`
}

type ProgressAnalytics struct {
	TopicProgress []TopicProgress `json:"topicProgress"`
	SessionTrends []float64       `json:"sessionTrends"`
	Summary       ProgressSummary `json:"summary"`
}
