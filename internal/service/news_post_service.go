package service

import (
	"time"

	"github.com/dancestudio/internal/db"
	"gorm.io/gorm"
)

// NewsPostService serves news posts, newest first.
type NewsPostService = Resource[db.NewsPost, NewsPostPayload]

// NewsPostPayload is the writable part of a news post.
type NewsPostPayload struct {
	Title       Optional[string]    `json:"title"`
	Slug        Optional[string]    `json:"slug"`
	Body        Optional[string]    `json:"body"`
	Image       Optional[string]    `json:"image"`
	PublishedAt Optional[time.Time] `json:"published_at"`
	IsPublished Optional[bool]      `json:"is_published"`
}

// Apply copies the payload onto post.
func (p NewsPostPayload) Apply(post *db.NewsPost, partial bool) FieldErrors {
	b := newBinder(partial)
	b.text("title", p.Title, &post.Title, textRule{required: true, max: 200})
	b.text("slug", p.Slug, &post.Slug, slugRule(true))
	b.text("body", p.Body, &post.Body, textRule{required: true})
	b.text("image", p.Image, &post.Image, textRule{max: 255})
	b.timestamp("published_at", p.PublishedAt, &post.PublishedAt)
	b.flag("is_published", p.IsPublished, &post.IsPublished)
	return b.errs
}

// NewNewsPostService returns the news post resource.
func NewNewsPostService(gdb *gorm.DB) *NewsPostService {
	return NewResource[db.NewsPost, NewsPostPayload](gdb, Kind[db.NewsPost]{
		Name:      "news post",
		Defaults:  func() db.NewsPost { return db.NewsPost{IsPublished: true} },
		ListOrder: []string{"published_at desc", "id desc"},
		Slug:      func(n *db.NewsPost) *string { return &n.Slug },
	})
}
