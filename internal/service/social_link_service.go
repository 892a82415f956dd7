package service

import (
	"github.com/dancestudio/internal/db"
	"gorm.io/gorm"
)

// SocialLinkService serves the footer social links.
type SocialLinkService = Resource[db.SocialLink, SocialLinkPayload]

// SocialLinkPayload is the writable part of a social link.
type SocialLinkPayload struct {
	Platform Optional[string] `json:"platform"`
	URL      Optional[string] `json:"url"`
	IsActive Optional[bool]   `json:"is_active"`
	Order    Optional[int]    `json:"order"`
}

// Apply copies the payload onto link.
func (p SocialLinkPayload) Apply(link *db.SocialLink, partial bool) FieldErrors {
	b := newBinder(partial)
	b.text("platform", p.Platform, &link.Platform, textRule{required: true, max: 50})
	b.text("url", p.URL, &link.URL, textRule{required: true, max: 200, validate: urlRule})
	b.flag("is_active", p.IsActive, &link.IsActive)
	b.order("order", p.Order, &link.Order)
	return b.errs
}

// NewSocialLinkService returns the social link resource.
func NewSocialLinkService(gdb *gorm.DB) *SocialLinkService {
	return NewResource[db.SocialLink, SocialLinkPayload](gdb, Kind[db.SocialLink]{
		Name:      "social link",
		Defaults:  func() db.SocialLink { return db.SocialLink{IsActive: true} },
		ListOrder: []string{"id asc"},
		Order:     func(l *db.SocialLink) *int { return &l.Order },
	})
}
