package handler

import (
	"github.com/dancestudio/internal/db"
	"github.com/dancestudio/internal/service"
	"github.com/dancestudio/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	services     *service.Services
	images       *storage.ImageStore
	excludeSlugs []string

	Pages           *Resource[db.Page, service.PagePayload]
	ClassSections   *Resource[db.ClassSection, service.ClassSectionPayload]
	NewsPosts       *Resource[db.NewsPost, service.NewsPostPayload]
	ContactMessages *Resource[db.ContactMessage, service.ContactMessagePayload]
	SocialLinks     *Resource[db.SocialLink, service.SocialLinkPayload]
	MediaItems      *Resource[db.MediaItem, service.MediaItemPayload]
	EventGalleries  *Resource[db.EventGallery, service.EventGalleryPayload]
}

// NewAPI constructs a handler set with shared services. excludeSlugs is the
// page listing filter applied when the request does not name one.
func NewAPI(gdb *gorm.DB, images *storage.ImageStore, excludeSlugs []string) *API {
	svcs := service.NewServices(gdb)
	a := &API{
		db:           gdb,
		services:     svcs,
		images:       images,
		excludeSlugs: excludeSlugs,
	}

	a.Pages = NewResource(svcs.Pages, a.pageScopes)
	a.ClassSections = NewResource(svcs.ClassSections, nil)
	a.NewsPosts = NewResource(svcs.NewsPosts, nil)
	a.ContactMessages = NewResource(svcs.ContactMessages, nil)
	a.SocialLinks = NewResource(svcs.SocialLinks, nil)
	a.MediaItems = NewResource(svcs.MediaItems, nil)
	a.EventGalleries = NewResource(svcs.EventGalleries, nil)
	return a
}

// Services exposes the service layer, used by the seeder and tests.
func (a *API) Services() *service.Services {
	return a.services
}

// Register mounts every collection on r.
func (a *API) Register(r gin.IRouter) {
	a.Pages.Register(r, "/pages")
	a.ClassSections.Register(r, "/class-sections")
	a.NewsPosts.Register(r, "/news-posts")
	a.ContactMessages.Register(r, "/contact-messages")
	a.SocialLinks.Register(r, "/social-links")
	a.MediaItems.Register(r, "/media-items")
	a.EventGalleries.Register(r, "/event-galleries")

	r.POST("/uploads", a.UploadImage)
	r.POST("/uploads/", a.UploadImage)
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
