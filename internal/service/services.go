package service

import "gorm.io/gorm"

// Services bundles one resource per entity.
type Services struct {
	Pages           *PageService
	ClassSections   *ClassSectionService
	NewsPosts       *NewsPostService
	ContactMessages *ContactMessageService
	SocialLinks     *SocialLinkService
	MediaItems      *MediaItemService
	EventGalleries  *EventGalleryService
}

// NewServices builds every resource on top of gdb.
func NewServices(gdb *gorm.DB) *Services {
	return &Services{
		Pages:           NewPageService(gdb),
		ClassSections:   NewClassSectionService(gdb),
		NewsPosts:       NewNewsPostService(gdb),
		ContactMessages: NewContactMessageService(gdb),
		SocialLinks:     NewSocialLinkService(gdb),
		MediaItems:      NewMediaItemService(gdb),
		EventGalleries:  NewEventGalleryService(gdb),
	}
}
