package repository

import (
	"errors"

	"recommender/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Insert(user *models.User) (bool, error)
	GetByName(name string) (*models.User, error)
	IDs() ([]int64, error)
	Count() (int64, error)
	Delete(id int64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Insert stores a user, skipping silently when the unique name already
// exists. The returned bool reports whether a row was actually written.
func (r *userRepository) Insert(user *models.User) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(user)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByName retrieves a user by their unique name
func (r *userRepository) GetByName(name string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IDs retrieves all user ids
func (r *userRepository) IDs() ([]int64, error) {
	var ids []int64
	if err := r.db.Model(&models.User{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Count counts the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// Delete removes a user; their ratings go with them via the cascade
func (r *userRepository) Delete(id int64) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}
