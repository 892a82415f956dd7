package db

import (
	"time"

	"github.com/dancestudio/internal/videoembed"
	"gorm.io/gorm"
)

// MediaType tags a MediaItem as either a photo or a video.
type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypePhoto, MediaTypeVideo:
		return true
	default:
		return false
	}
}

// MediaItem is a photo (uploaded image) or a video (external URL) shown in galleries.
// EmbedURL is the player URL for YouTube and Vimeo videos.
type MediaItem struct {
	Model
	MediaType   MediaType `gorm:"size:10;not null" json:"media_type"`
	Title       string    `gorm:"size:200" json:"title"`
	Image       string    `gorm:"size:255" json:"image"`
	VideoURL    string    `gorm:"size:200" json:"video_url"`
	EmbedURL    string    `gorm:"-" json:"embed_url"`
	IsPublished bool      `gorm:"not null" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

// AfterFind fills the player URL.
func (m *MediaItem) AfterFind(tx *gorm.DB) error {
	m.fillEmbed()
	return nil
}

// AfterSave fills the player URL.
func (m *MediaItem) AfterSave(tx *gorm.DB) error {
	m.fillEmbed()
	return nil
}

func (m *MediaItem) fillEmbed() {
	m.EmbedURL = ""
	if m.MediaType == MediaTypeVideo {
		m.EmbedURL = videoembed.EmbedURL(m.VideoURL)
	}
}
