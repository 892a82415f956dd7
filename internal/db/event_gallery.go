package db

import (
	"time"

	"gorm.io/datatypes"
)

// EventGallery groups media items from a single performance or event.
// MediaItemIDs is a plain JSON list, not a foreign key; MediaItems is filled on read.
type EventGallery struct {
	Model
	Title        string                    `gorm:"size:200;not null" json:"title"`
	Slug         string                    `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Excerpt      string                    `gorm:"type:text" json:"excerpt"`
	Description  string                    `gorm:"type:text" json:"description"`
	EventDate    *time.Time                `json:"event_date"`
	MediaItemIDs datatypes.JSONSlice[uint] `json:"media_item_ids"`
	MediaItems   []MediaItem               `gorm:"-" json:"media_items"`
	IsPublished  bool                      `gorm:"not null" json:"is_published"`
	Order        int                       `gorm:"column:sort_order;not null;index" json:"order"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}
