package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dancestudio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) (*Services, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "service.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return NewServices(gdb), func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func expectFieldError(t *testing.T, err error, field, substr string) {
	t.Helper()
	verr, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, msg := range verr.Fields[field] {
		if strings.Contains(msg, substr) {
			return
		}
	}
	t.Fatalf("expected %q in %s errors, got %v", substr, field, verr.Fields)
}

func pagePayload(title, slug string) PagePayload {
	return PagePayload{Title: Some(title), Slug: Some(slug), Content: Some("Welcome to the studio")}
}

func TestPageCreateThenGetRoundTrip(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	payload := pagePayload("  About us ", "about")
	payload.Excerpt = Some("Who we are")
	payload.Email = Some("Studio@Example.com")

	created, err := svcs.Pages.Create(ctx, payload)
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	if created.Title != "About us" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if !created.IsPublished {
		t.Fatal("expected is_published to default to true")
	}
	if created.Email != "studio@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}

	loaded, err := svcs.Pages.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if loaded.Title != created.Title || loaded.Slug != created.Slug || loaded.Excerpt != created.Excerpt ||
		loaded.Content != created.Content || loaded.Order != created.Order || loaded.ContentHTML != created.ContentHTML {
		t.Fatalf("loaded page differs: %+v vs %+v", loaded, created)
	}
	if !strings.Contains(loaded.ContentHTML, "Welcome to the studio") {
		t.Fatalf("expected rendered content, got %q", loaded.ContentHTML)
	}
}

func TestPageOrderAssignment(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	last := 0
	for _, slug := range []string{"one", "two", "three"} {
		page, err := svcs.Pages.Create(ctx, pagePayload(slug, slug))
		if err != nil {
			t.Fatalf("create %s: %v", slug, err)
		}
		if page.Order <= last {
			t.Fatalf("expected increasing order, got %d after %d", page.Order, last)
		}
		last = page.Order
	}

	explicit := pagePayload("Five", "five")
	explicit.Order = Some(5)
	page, err := svcs.Pages.Create(ctx, explicit)
	if err != nil {
		t.Fatalf("create explicit order: %v", err)
	}
	if page.Order != 5 {
		t.Fatalf("expected order 5, got %d", page.Order)
	}

	negative := pagePayload("Neg", "neg")
	negative.Order = Some(-1)
	_, err = svcs.Pages.Create(ctx, negative)
	expectFieldError(t, err, "order", "greater than or equal to 0")
}

func TestPageSlugNormalization(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tests := map[string]string{
		"TEST-SLUG-WITH-UPPERCASE": "test-slug-with-uppercase",
		"test page with spaces":    "test-page-with-spaces",
	}
	for input, want := range tests {
		page, err := svcs.Pages.Create(ctx, pagePayload("Title", input))
		if err != nil {
			t.Fatalf("create %q: %v", input, err)
		}
		if page.Slug != want {
			t.Fatalf("slug %q stored as %q, want %q", input, page.Slug, want)
		}
	}

	_, err := svcs.Pages.Create(ctx, pagePayload("Title", "!!!"))
	expectFieldError(t, err, "slug", "slug is required")
}

func TestPageDuplicateSlugRejected(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svcs.Pages.Create(ctx, pagePayload("About", "about")); err != nil {
		t.Fatalf("create page: %v", err)
	}
	_, err := svcs.Pages.Create(ctx, pagePayload("About again", "ABOUT"))
	expectFieldError(t, err, "slug", "page with this slug already exists.")

	total, err := svcs.Pages.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 page, got %d", total)
	}
}

func TestPageGetBySlugIgnoresCase(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svcs.Pages.Create(ctx, pagePayload("About", "about"))
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	found, err := svcs.Pages.GetBySlug(ctx, " ABOUT ")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected page %d, got %d", created.ID, found.ID)
	}
	if _, err := svcs.Pages.GetBySlug(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svcs.SocialLinks.GetBySlug(ctx, "anything"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for resource without slug, got %v", err)
	}
}

func TestPageListExcludesSlugs(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for _, slug := range []string{"about", "Contact", "socialmedia"} {
		if _, err := svcs.Pages.Create(ctx, pagePayload(slug, slug)); err != nil {
			t.Fatalf("create %s: %v", slug, err)
		}
	}

	defaults := []string{"contact", "socialmedia"}
	pages, err := svcs.Pages.List(ctx, ExcludeSlugs(ParseExcludeSlugs("", defaults)))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pages) != 1 || pages[0].Slug != "about" {
		t.Fatalf("expected only about, got %+v", pages)
	}

	pages, err = svcs.Pages.List(ctx, ExcludeSlugs(ParseExcludeSlugs("none", defaults)))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected all pages, got %d", len(pages))
	}

	pages, err = svcs.Pages.List(ctx, ExcludeSlugs(ParseExcludeSlugs("ABOUT", defaults)))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
}

func TestReplaceRequiresAllRequiredFields(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	page, err := svcs.Pages.Create(ctx, pagePayload("About", "about"))
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	_, err = svcs.Pages.Update(ctx, page.ID, PagePayload{Title: Some("New title")}, false)
	expectFieldError(t, err, "slug", "slug is required")
	expectFieldError(t, err, "content", "content is required")

	loaded, err := svcs.Pages.Get(ctx, page.ID)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if loaded.Title != "About" {
		t.Fatalf("expected no mutation after rejected replace, got %q", loaded.Title)
	}
}

func TestReplaceIsIdempotent(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	page, err := svcs.Pages.Create(ctx, pagePayload("About", "about"))
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	payload := pagePayload("About the studio", "about-the-studio")
	payload.IsPublished = Some(false)
	first, err := svcs.Pages.Update(ctx, page.ID, payload, false)
	if err != nil {
		t.Fatalf("first replace: %v", err)
	}
	second, err := svcs.Pages.Update(ctx, page.ID, payload, false)
	if err != nil {
		t.Fatalf("second replace: %v", err)
	}
	if first.Title != second.Title || first.Slug != second.Slug || first.IsPublished != second.IsPublished || first.Order != second.Order {
		t.Fatalf("replace not idempotent: %+v vs %+v", first, second)
	}
	if second.IsPublished {
		t.Fatal("expected explicit false to be stored")
	}
}

func TestContactMessagePartialUpdateKeepsOtherFields(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	msg, err := svcs.ContactMessages.Create(ctx, ContactMessagePayload{
		Name:    Some("Jane"),
		Email:   Some(" TEST.USER@EXAMPLE.COM "),
		Subject: Some("Trial class"),
		Message: Some("Is there a beginner class?"),
	})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}
	if msg.Email != "test.user@example.com" {
		t.Fatalf("expected normalized email, got %q", msg.Email)
	}
	if msg.IsRead {
		t.Fatal("expected is_read to default to false")
	}
	if msg.SubmittedAt.IsZero() {
		t.Fatal("expected submitted_at to be stamped")
	}

	updated, err := svcs.ContactMessages.Update(ctx, msg.ID, ContactMessagePayload{IsRead: Some(true)}, true)
	if err != nil {
		t.Fatalf("partial update: %v", err)
	}
	if !updated.IsRead {
		t.Fatal("expected is_read to be true")
	}
	if updated.Name != msg.Name || updated.Email != msg.Email || updated.Subject != msg.Subject || updated.Message != msg.Message {
		t.Fatalf("partial update changed other fields: %+v", updated)
	}
	if updated.SubmittedAt.Unix() != msg.SubmittedAt.Unix() {
		t.Fatalf("submitted_at changed: %v vs %v", updated.SubmittedAt, msg.SubmittedAt)
	}
}

func TestContactMessageRejectsInvalidEmail(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()

	_, err := svcs.ContactMessages.Create(context.Background(), ContactMessagePayload{
		Name:    Some("Jane"),
		Email:   Some("jane@localhost"),
		Subject: Some("Hi"),
		Message: Some("Hello"),
	})
	expectFieldError(t, err, "email", "invalid email")
}

func TestRequiredFieldsReported(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()

	_, err := svcs.ContactMessages.Create(context.Background(), ContactMessagePayload{Name: Some("   ")})
	for _, field := range []string{"name", "email", "subject", "message"} {
		expectFieldError(t, err, field, field+" is required")
	}
}

func TestDeleteSemantics(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	link, err := svcs.SocialLinks.Create(ctx, SocialLinkPayload{Platform: Some("Instagram"), URL: Some("https://instagram.com/studio")})
	if err != nil {
		t.Fatalf("create link: %v", err)
	}

	if err := svcs.SocialLinks.Delete(ctx, link.ID+100); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if total, _ := svcs.SocialLinks.Count(ctx); total != 1 {
		t.Fatalf("expected count unchanged, got %d", total)
	}

	if err := svcs.SocialLinks.Delete(ctx, link.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if total, _ := svcs.SocialLinks.Count(ctx); total != 0 {
		t.Fatalf("expected count 0, got %d", total)
	}
	if _, err := svcs.SocialLinks.Get(ctx, link.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := svcs.SocialLinks.Update(ctx, link.ID, SocialLinkPayload{IsActive: Some(false)}, true); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}

func TestSocialLinkURLValidation(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for _, url := range []string{"http://x.com", "https://x.com"} {
		link, err := svcs.SocialLinks.Create(ctx, SocialLinkPayload{Platform: Some("x"), URL: Some(url)})
		if err != nil {
			t.Fatalf("expected %q to be accepted: %v", url, err)
		}
		if !link.IsActive || link.Order == 0 {
			t.Fatalf("expected defaults on %+v", link)
		}
	}
	for _, url := range []string{"ftp://x.com", "x.com"} {
		_, err := svcs.SocialLinks.Create(ctx, SocialLinkPayload{Platform: Some("x"), URL: Some(url)})
		expectFieldError(t, err, "url", "URL must start with http:// or https://")
	}
}

func TestClassSectionDerivesUniqueSlug(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	payload := ClassSectionPayload{
		Name:        Some("Ballet Débutant"),
		Description: Some("First steps in ballet"),
		AgeGroup:    Some("6-9"),
		Level:       Some("Beginner"),
		Schedule:    Some("Mon 17:00"),
	}

	first, err := svcs.ClassSections.Create(ctx, payload)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.Slug != "ballet-debutant" {
		t.Fatalf("unexpected slug %q", first.Slug)
	}
	if !first.IsActive || first.Order != 1 {
		t.Fatalf("expected defaults, got %+v", first)
	}

	second, err := svcs.ClassSections.Create(ctx, payload)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.Slug != "ballet-debutant-2" {
		t.Fatalf("expected suffixed slug, got %q", second.Slug)
	}

	found, err := svcs.ClassSections.GetBySlug(ctx, "Ballet-Debutant-2")
	if err != nil || found.ID != second.ID {
		t.Fatalf("expected slug lookup to find second section, got %v %v", found, err)
	}

	_, err = svcs.ClassSections.Create(ctx, ClassSectionPayload{Name: Some("Jazz"), Description: Some(" ")})
	expectFieldError(t, err, "description", "description is required")
}

func TestNewsPostsListNewestFirst(t *testing.T) {
	svcs, cleanup := setupServiceTestDB(t)
	defer cleanup()
	ctx := context.Background()

	dates := []string{"2024-01-10T10:00:00Z", "2024-03-01T10:00:00Z", "2024-02-15T10:00:00Z"}
	for i, date := range dates {
		published := mustTime(t, date)
		_, err := svcs.NewsPosts.Create(ctx, NewsPostPayload{
			Title:       Some("Post"),
			Slug:        Some("post-" + string(rune('a'+i))),
			Body:        Some("**news**"),
			PublishedAt: Some(published),
		})
		if err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	posts, err := svcs.NewsPosts.List(ctx)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].Slug != "post-b" || posts[1].Slug != "post-c" || posts[2].Slug != "post-a" {
		t.Fatalf("unexpected order: %s %s %s", posts[0].Slug, posts[1].Slug, posts[2].Slug)
	}
	if !strings.Contains(posts[0].BodyHTML, "<strong>news</strong>") {
		t.Fatalf("expected rendered body, got %q", posts[0].BodyHTML)
	}

	_, err = svcs.NewsPosts.Create(ctx, NewsPostPayload{Title: Some("x"), Slug: Some("x"), Body: Some("x")})
	expectFieldError(t, err, "published_at", "published_at is required")
}
