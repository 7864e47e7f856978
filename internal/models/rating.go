package models

import "time"

// Rating is keyed by (user_id, item_id): one rating per pair, and
// re-inserting the same pair is a no-op rather than an overwrite.
// The check constraint rejects out-of-range values at the storage layer so
// every write path is covered, not just the ones that go through a service.
type Rating struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ItemID    int64     `json:"item_id" gorm:"primaryKey;autoIncrement:false"`
	Rating    float64   `json:"rating" gorm:"not null;check:rating >= 0 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Item Item `json:"item,omitempty" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
