package service

import (
	"fmt"
	"strings"

	"github.com/dancestudio/internal/db"
	"gorm.io/gorm"
)

const (
	msgPhotoNeedsImage   = "Image is required for photo media type."
	msgPhotoRejectsVideo = "Video URL should not be provided for photo media type."
	msgVideoNeedsURL     = "Video URL is required for video media type."
	msgVideoRejectsImage = "Image should not be provided for video media type."
)

// MediaItemService serves gallery photos and videos.
type MediaItemService = Resource[db.MediaItem, MediaItemPayload]

// MediaItemPayload is the writable part of a media item.
type MediaItemPayload struct {
	MediaType   Optional[string] `json:"media_type"`
	Title       Optional[string] `json:"title"`
	Image       Optional[string] `json:"image"`
	VideoURL    Optional[string] `json:"video_url"`
	IsPublished Optional[bool]   `json:"is_published"`
}

// Apply copies the payload onto item.
func (p MediaItemPayload) Apply(item *db.MediaItem, partial bool) FieldErrors {
	b := newBinder(partial)

	mediaType := string(item.MediaType)
	b.text("media_type", p.MediaType, &mediaType, textRule{required: true, normalize: lowerRule, validate: validMediaType})
	item.MediaType = db.MediaType(mediaType)

	b.text("title", p.Title, &item.Title, textRule{max: 200})
	b.text("image", p.Image, &item.Image, textRule{max: 255})
	b.text("video_url", p.VideoURL, &item.VideoURL, textRule{max: 200})
	b.flag("is_published", p.IsPublished, &item.IsPublished)
	return b.errs
}

func validMediaType(value string) string {
	if !db.MediaType(value).Valid() {
		return fmt.Sprintf("%q is not a valid choice.", value)
	}
	return ""
}

// checkMediaItem enforces that exactly one of image and video_url is set,
// matching the media type. Presence is checked before exclusivity.
func checkMediaItem(_ *gorm.DB, item *db.MediaItem) (FieldErrors, error) {
	errs := FieldErrors{}
	hasImage := strings.TrimSpace(item.Image) != ""
	hasVideo := strings.TrimSpace(item.VideoURL) != ""

	switch item.MediaType {
	case db.MediaTypePhoto:
		switch {
		case !hasImage:
			errs.Add(NonFieldErrors, msgPhotoNeedsImage)
		case hasVideo:
			errs.Add(NonFieldErrors, msgPhotoRejectsVideo)
		}
	case db.MediaTypeVideo:
		switch {
		case !hasVideo:
			errs.Add(NonFieldErrors, msgVideoNeedsURL)
		case hasImage:
			errs.Add(NonFieldErrors, msgVideoRejectsImage)
		case !HasHTTPPrefix(item.VideoURL):
			errs.Add("video_url", msgVideoPrefix)
		}
	default:
		errs.Add("media_type", fmt.Sprintf("%q is not a valid choice.", string(item.MediaType)))
	}
	return errs, nil
}

// NewMediaItemService returns the media item resource.
func NewMediaItemService(gdb *gorm.DB) *MediaItemService {
	return NewResource[db.MediaItem, MediaItemPayload](gdb, Kind[db.MediaItem]{
		Name:      "media item",
		Defaults:  func() db.MediaItem { return db.MediaItem{IsPublished: true} },
		ListOrder: []string{"id asc"},
		Check:     checkMediaItem,
	})
}
