package repository

import (
	"recommender/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Insert(rating *models.Rating) (bool, error)
	GetByUserAndItem(userID, itemID int64) (*models.Rating, error)
	ListByUser(userID int64) ([]models.Rating, error)
	Count() (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Insert stores a rating with skip-on-conflict semantics on the composite
// (user_id, item_id) key: re-inserting an existing pair is a no-op, never an
// overwrite. Values outside [0, 5] still fail the check constraint; only
// uniqueness conflicts are swallowed here.
func (r *ratingRepository) Insert(rating *models.Rating) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(rating)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByUserAndItem retrieves a user's rating for a specific item
func (r *ratingRepository) GetByUserAndItem(userID, itemID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByUser retrieves all ratings left by one user
func (r *ratingRepository) ListByUser(userID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).Order("item_id").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// Count counts the total number of ratings
func (r *ratingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Count(&count).Error
	return count, err
}
