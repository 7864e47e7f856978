package repository

import (
	"errors"

	"recommender/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Insert(item *models.Item) (bool, error)
	List() ([]models.Item, error)
	IDs() ([]int64, error)
	Count() (int64, error)
	Delete(id int64) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Insert stores an item with skip-on-conflict semantics against the
// (title, year) natural key. The returned bool reports whether a row was
// actually written, so callers can count persisted rows rather than
// attempts.
func (r *itemRepository) Insert(item *models.Item) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(item)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List retrieves all items
func (r *itemRepository) List() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// IDs retrieves all item ids
func (r *itemRepository) IDs() ([]int64, error) {
	var ids []int64
	if err := r.db.Model(&models.Item{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Count counts the total number of items
func (r *itemRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).Count(&count).Error
	return count, err
}

// Delete removes an item; its ratings go with it via the cascade
func (r *itemRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("item not found")
	}
	return nil
}
