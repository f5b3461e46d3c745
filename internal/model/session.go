package model

import "time"

// QuizSession is one quiz attempt. The question list is fixed at creation;
// answers, score and time spent are written exactly once at submission.
type QuizSession struct {
	UUIDBase
	UserID    uint        `gorm:"index;not null" json:"userId"`
	User      User        `gorm:"foreignKey:UserID" json:"-"`
	Questions StringSlice `gorm:"type:json" json:"questions"`
	Answers   IntSlice    `gorm:"type:json" json:"answers"`
	Score     float64     `gorm:"type:decimal(5,2);default:0" json:"score"`
	// Level the user held when the session was created.
	DifficultyLevel int `gorm:"not null" json:"difficultyLevel"`
	// Seconds.
	TimeSpent   int        `gorm:"default:0" json:"timeSpent"`
	CompletedAt *time.Time `gorm:"index" json:"completedAt,omitempty"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

// Submitted reports whether the session has already been scored.
func (s *QuizSession) Submitted() bool {
	return s.CompletedAt != nil
}
