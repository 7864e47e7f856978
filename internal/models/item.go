package models

import "time"

// Item is one catalog entry. Genre, Year and Description are nullable at
// ingest time; the cleaning pass fills them before the item table is handed
// to downstream consumers.
//
// The (title, year) unique index is the natural key: the surrogate id is
// autoincremented, so without it a re-run of ingestion against the same
// source would insert every row again.
type Item struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null;uniqueIndex:idx_items_title_year"`
	Genre       *string   `json:"genre,omitempty"`
	Year        *int      `json:"year,omitempty" gorm:"uniqueIndex:idx_items_title_year"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Item) TableName() string {
	return "items"
}
