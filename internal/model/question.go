package model

// Question is an authored multiple-choice question. Immutable after creation.
type Question struct {
	UUIDBase
	Text    string      `gorm:"type:text;not null" json:"text"`
	Options StringSlice `gorm:"type:json" json:"options"`
	// Index into Options, 0-3.
	CorrectAnswer   int    `gorm:"not null" json:"correctAnswer"`
	Topic           string `gorm:"size:100;index;not null" json:"topic"`
	DifficultyLevel int    `gorm:"index;not null" json:"difficultyLevel"`
	Explanation     string `gorm:"type:text" json:"explanation,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// QuizQuestion is the answer-stripped view returned to a client taking a
// session. CorrectAnswer and Explanation must never leak here.
type QuizQuestion struct {
	ID              string      `json:"id"`
	Text            string      `json:"text"`
	Options         StringSlice `json:"options"`
	Topic           string      `json:"topic"`
	DifficultyLevel int         `json:"difficultyLevel"`
}

func (q *Question) ForQuiz() QuizQuestion {
	return QuizQuestion{
		ID:              q.ID,
		Text:            q.Text,
		Options:         q.Options,
		Topic:           q.Topic,
		DifficultyLevel: q.DifficultyLevel,
	}
}
