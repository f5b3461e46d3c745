package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// Difficulty levels shared by users and questions.
const (
	LevelBeginner     = 1
	LevelIntermediate = 2
	LevelAdvanced     = 3
)

func DifficultyLabel(level int) string {
	switch level {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	}
	return "Unknown"
}

type User struct {
	BaseModel
	FirstName string   `gorm:"size:100;not null" json:"firstName"`
	LastName  string   `gorm:"size:100;not null" json:"lastName"`
	Email     string   `gorm:"size:100;unique;not null" json:"email"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	Role      UserRole `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	// New accounts start at the intermediate level.
	CurrentDifficultyLevel int `gorm:"default:2" json:"currentDifficultyLevel"`
}

func (User) TableName() string {
	return "users"
}
