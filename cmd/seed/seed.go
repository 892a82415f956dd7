package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dancestudio/internal/service"
	"gopkg.in/yaml.v3"
)

type record = map[string]interface{}

// fixtures mirrors fixtures.yaml. Records are kept as loose maps and decoded
// into payloads through JSON so they follow the same rules as API requests.
type fixtures struct {
	Pages          []record `yaml:"pages"`
	ClassSections  []record `yaml:"class_sections"`
	NewsPosts      []record `yaml:"news_posts"`
	SocialLinks    []record `yaml:"social_links"`
	MediaItems     []record `yaml:"media_items"`
	EventGalleries []record `yaml:"event_galleries"`
}

// summary counts created records per collection.
type summary map[string]int

func parseFixtures(data []byte) (*fixtures, error) {
	var f fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

func decodePayload(rec record, dst interface{}) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// seedCollection creates every record unless the collection already holds data.
func seedCollection[T service.Record, P service.Payload[T]](ctx context.Context, res *service.Resource[T, P], records []record, force bool) ([]T, error) {
	if !force {
		total, err := res.Count(ctx)
		if err != nil {
			return nil, err
		}
		if total > 0 {
			return nil, nil
		}
	}

	created := make([]T, 0, len(records))
	for i, rec := range records {
		var payload P
		if err := decodePayload(rec, &payload); err != nil {
			return nil, fmt.Errorf("%s #%d: %w", res.Name(), i+1, err)
		}
		item, err := res.Create(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("%s #%d: %w", res.Name(), i+1, err)
		}
		created = append(created, *item)
	}
	return created, nil
}

// seed loads f through svcs. Collections that already have rows are skipped
// unless force is set.
func seed(ctx context.Context, svcs *service.Services, f *fixtures, force bool) (summary, error) {
	out := summary{}

	pages, err := seedCollection(ctx, svcs.Pages, f.Pages, force)
	if err != nil {
		return nil, err
	}
	out["pages"] = len(pages)

	sections, err := seedCollection(ctx, svcs.ClassSections, f.ClassSections, force)
	if err != nil {
		return nil, err
	}
	out["class_sections"] = len(sections)

	posts, err := seedCollection(ctx, svcs.NewsPosts, f.NewsPosts, force)
	if err != nil {
		return nil, err
	}
	out["news_posts"] = len(posts)

	links, err := seedCollection(ctx, svcs.SocialLinks, f.SocialLinks, force)
	if err != nil {
		return nil, err
	}
	out["social_links"] = len(links)

	media, err := seedCollection(ctx, svcs.MediaItems, f.MediaItems, force)
	if err != nil {
		return nil, err
	}
	out["media_items"] = len(media)

	ids := make([]uint, len(media))
	for i, item := range media {
		ids[i] = item.ID
	}
	galleries := make([]record, 0, len(f.EventGalleries))
	for i, rec := range f.EventGalleries {
		remapped, err := remapMediaRefs(rec, ids)
		if err != nil {
			return nil, fmt.Errorf("event gallery #%d: %w", i+1, err)
		}
		galleries = append(galleries, remapped)
	}
	created, err := seedCollection(ctx, svcs.EventGalleries, galleries, force)
	if err != nil {
		return nil, err
	}
	out["event_galleries"] = len(created)

	return out, nil
}

// remapMediaRefs swaps 1-based fixture positions for stored media ids.
// Galleries are left without media when no media items were created in this run.
func remapMediaRefs(rec record, ids []uint) (record, error) {
	refs, ok := rec["media_item_ids"].([]interface{})
	if !ok {
		return rec, nil
	}

	out := make(record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	if len(ids) == 0 {
		delete(out, "media_item_ids")
		return out, nil
	}

	mapped := make([]uint, 0, len(refs))
	for _, ref := range refs {
		pos, ok := ref.(int)
		if !ok || pos < 1 || pos > len(ids) {
			return nil, fmt.Errorf("media_item_ids: unknown fixture position %v", ref)
		}
		mapped = append(mapped, ids[pos-1])
	}
	out["media_item_ids"] = mapped
	return out, nil
}
