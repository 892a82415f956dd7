package service

import (
	"fmt"
	"time"

	"github.com/dancestudio/internal/db"
	"gorm.io/gorm"
)

// EventGalleryService serves galleries grouping media items of one event.
type EventGalleryService = Resource[db.EventGallery, EventGalleryPayload]

// EventGalleryPayload is the writable part of an event gallery.
type EventGalleryPayload struct {
	Title        Optional[string]    `json:"title"`
	Slug         Optional[string]    `json:"slug"`
	Excerpt      Optional[string]    `json:"excerpt"`
	Description  Optional[string]    `json:"description"`
	EventDate    Optional[time.Time] `json:"event_date"`
	MediaItemIDs Optional[[]uint]    `json:"media_item_ids"`
	IsPublished  Optional[bool]      `json:"is_published"`
	Order        Optional[int]       `json:"order"`
}

// Apply copies the payload onto gallery.
func (p EventGalleryPayload) Apply(gallery *db.EventGallery, partial bool) FieldErrors {
	b := newBinder(partial)
	b.text("title", p.Title, &gallery.Title, textRule{required: true, max: 200})
	b.text("slug", p.Slug, &gallery.Slug, slugRule(true))
	b.text("excerpt", p.Excerpt, &gallery.Excerpt, textRule{})
	b.text("description", p.Description, &gallery.Description, textRule{})
	b.nullableTime("event_date", p.EventDate, &gallery.EventDate)
	if p.MediaItemIDs.Set {
		gallery.MediaItemIDs = uniqueIDs(p.MediaItemIDs.Value)
	}
	b.flag("is_published", p.IsPublished, &gallery.IsPublished)
	b.order("order", p.Order, &gallery.Order)
	return b.errs
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// checkEventGallery rejects references to media items that do not exist.
func checkEventGallery(tx *gorm.DB, gallery *db.EventGallery) (FieldErrors, error) {
	errs := FieldErrors{}
	if len(gallery.MediaItemIDs) == 0 {
		return errs, nil
	}

	found, err := existingMediaIDs(tx, gallery.MediaItemIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range gallery.MediaItemIDs {
		if _, ok := found[id]; !ok {
			errs.Add("media_item_ids", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
		}
	}
	return errs, nil
}

func existingMediaIDs(tx *gorm.DB, ids []uint) (map[uint]struct{}, error) {
	var stored []uint
	if err := tx.Model(&db.MediaItem{}).Where("id IN ?", ids).Pluck("id", &stored).Error; err != nil {
		return nil, err
	}
	found := make(map[uint]struct{}, len(stored))
	for _, id := range stored {
		found[id] = struct{}{}
	}
	return found, nil
}

// expandEventGalleries attaches the referenced media items in stored order.
// Items deleted since the gallery was saved are skipped.
func expandEventGalleries(tx *gorm.DB, galleries []db.EventGallery) error {
	var ids []uint
	for _, gallery := range galleries {
		ids = append(ids, gallery.MediaItemIDs...)
	}

	byID := make(map[uint]db.MediaItem)
	if len(ids) > 0 {
		var items []db.MediaItem
		if err := tx.Where("id IN ?", uniqueIDs(ids)).Find(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			byID[item.ID] = item
		}
	}

	for i := range galleries {
		media := make([]db.MediaItem, 0, len(galleries[i].MediaItemIDs))
		for _, id := range galleries[i].MediaItemIDs {
			if item, ok := byID[id]; ok {
				media = append(media, item)
			}
		}
		galleries[i].MediaItems = media
		if galleries[i].MediaItemIDs == nil {
			galleries[i].MediaItemIDs = []uint{}
		}
	}
	return nil
}

// NewEventGalleryService returns the event gallery resource.
func NewEventGalleryService(gdb *gorm.DB) *EventGalleryService {
	return NewResource[db.EventGallery, EventGalleryPayload](gdb, Kind[db.EventGallery]{
		Name:      "event gallery",
		Defaults:  func() db.EventGallery { return db.EventGallery{IsPublished: true, MediaItemIDs: []uint{}} },
		ListOrder: []string{"id asc"},
		Slug:      func(g *db.EventGallery) *string { return &g.Slug },
		Order:     func(g *db.EventGallery) *int { return &g.Order },
		Check:     checkEventGallery,
		Expand:    expandEventGalleries,
	})
}
