package db

import (
	"time"

	"gorm.io/gorm"
)

// Page represents a standalone content page such as About or Contact.
// Address, Phone and Email are only filled for the contact page.
type Page struct {
	Model
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Excerpt     string    `gorm:"type:text" json:"excerpt"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	ContentHTML string    `gorm:"-" json:"content_html"`
	Address     string    `gorm:"size:255" json:"address"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Email       string    `gorm:"size:254" json:"email"`
	IsPublished bool      `gorm:"not null" json:"is_published"`
	Order       int       `gorm:"column:sort_order;not null;index" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AfterFind fills the rendered HTML body.
func (p *Page) AfterFind(tx *gorm.DB) error {
	p.ContentHTML = renderBody("pages", p.ID, p.Content)
	return nil
}

// AfterSave keeps the rendered HTML body in sync with the stored markdown.
func (p *Page) AfterSave(tx *gorm.DB) error {
	p.ContentHTML = renderBody("pages", p.ID, p.Content)
	return nil
}
