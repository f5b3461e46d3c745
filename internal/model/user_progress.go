package model

import "time"

// UserProgress accumulates per-(user, topic) answer statistics. Counts only
// ever grow; accuracy is recomputed from the counts on every write.
type UserProgress struct {
	UUIDBase
	UserID         uint      `gorm:"uniqueIndex:idx_user_topic;not null" json:"userId"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
	Topic          string    `gorm:"size:100;uniqueIndex:idx_user_topic;not null" json:"topic"`
	CorrectAnswers int       `gorm:"default:0" json:"correctAnswers"`
	TotalAnswers   int       `gorm:"default:0" json:"totalAnswers"`
	Accuracy       float64   `gorm:"type:decimal(5,2);default:0" json:"accuracy"`
	LastUpdated    time.Time `gorm:"autoUpdateTime" json:"lastUpdated"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
