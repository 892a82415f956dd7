package db

import (
	"time"

	"gorm.io/gorm"
)

// NewsPost 定义了新闻动态模型，默认按发布时间倒序展示
type NewsPost struct {
	Model
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	BodyHTML    string    `gorm:"-" json:"body_html"`
	Image       string    `gorm:"size:255" json:"image"`
	PublishedAt time.Time `gorm:"not null;index" json:"published_at"`
	IsPublished bool      `gorm:"not null" json:"is_published"`
}

// AfterFind fills the rendered HTML body.
func (n *NewsPost) AfterFind(tx *gorm.DB) error {
	n.BodyHTML = renderBody("news_posts", n.ID, n.Body)
	return nil
}

// AfterSave keeps the rendered HTML body in sync with the stored markdown.
func (n *NewsPost) AfterSave(tx *gorm.DB) error {
	n.BodyHTML = renderBody("news_posts", n.ID, n.Body)
	return nil
}
