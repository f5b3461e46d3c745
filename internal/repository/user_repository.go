package repository

import (
	"econ_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// ShiftDifficultyLevel moves the user's level by direction (-1, 0 or +1) in a
// single statement, clamped to 1..3 in SQL. Applying the delta to the stored
// value instead of writing a precomputed level keeps concurrent submissions
// from losing each other's transition.
func (r *UserRepository) ShiftDifficultyLevel(userID uint, direction int) error {
	if direction == 0 {
		return nil
	}
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("current_difficulty_level", gorm.Expr("LEAST(GREATEST(current_difficulty_level + ?, 1), 3)", direction)).
		Error
}
