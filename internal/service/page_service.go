package service

import (
	"strings"

	"github.com/dancestudio/internal/db"
	"gorm.io/gorm"
)

// PageService serves standalone pages such as About or Contact.
type PageService = Resource[db.Page, PagePayload]

// PagePayload is the writable part of a page.
type PagePayload struct {
	Title       Optional[string] `json:"title"`
	Slug        Optional[string] `json:"slug"`
	Excerpt     Optional[string] `json:"excerpt"`
	Content     Optional[string] `json:"content"`
	Address     Optional[string] `json:"address"`
	Phone       Optional[string] `json:"phone"`
	Email       Optional[string] `json:"email"`
	IsPublished Optional[bool]   `json:"is_published"`
	Order       Optional[int]    `json:"order"`
}

// Apply copies the payload onto page.
func (p PagePayload) Apply(page *db.Page, partial bool) FieldErrors {
	b := newBinder(partial)
	b.text("title", p.Title, &page.Title, textRule{required: true, max: 200})
	b.text("slug", p.Slug, &page.Slug, slugRule(true))
	b.text("excerpt", p.Excerpt, &page.Excerpt, textRule{})
	b.text("content", p.Content, &page.Content, textRule{required: true})
	b.text("address", p.Address, &page.Address, textRule{max: 255})
	b.text("phone", p.Phone, &page.Phone, textRule{max: 50})
	b.text("email", p.Email, &page.Email, textRule{max: 254, normalize: lowerRule, validate: emailRule})
	b.flag("is_published", p.IsPublished, &page.IsPublished)
	b.order("order", p.Order, &page.Order)
	return b.errs
}

// NewPageService returns the page resource.
func NewPageService(gdb *gorm.DB) *PageService {
	return NewResource[db.Page, PagePayload](gdb, Kind[db.Page]{
		Name:      "page",
		Defaults:  func() db.Page { return db.Page{IsPublished: true} },
		ListOrder: []string{"id asc"},
		Slug:      func(p *db.Page) *string { return &p.Slug },
		Order:     func(p *db.Page) *int { return &p.Order },
	})
}

// ParseExcludeSlugs interprets the exclude_slugs query value. An empty value
// selects defaults and "none" disables exclusion.
func ParseExcludeSlugs(raw string, defaults []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaults
	}
	if strings.EqualFold(raw, "none") {
		return nil
	}

	var slugs []string
	for _, part := range strings.Split(raw, ",") {
		if slug := strings.ToLower(strings.TrimSpace(part)); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}

// ExcludeSlugs drops records whose slug matches one of slugs, ignoring case.
func ExcludeSlugs(slugs []string) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		if len(slugs) == 0 {
			return tx
		}
		return tx.Where("LOWER(slug) NOT IN ?", slugs)
	}
}
