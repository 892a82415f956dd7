package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const (
	maxSlugLength   = 50
	maxSlugAttempts = 25
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9_-]+$`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9_-]+`)
	slugHyphens    = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases s and reduces it to letters, digits, hyphens and
// underscores. Input that already conforms is returned unchanged.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || slugPattern.MatchString(s) {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}
	s = slugDisallowed.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func truncateSlug(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return strings.TrimRight(s[:limit], "-")
}

// uniqueSlug returns base, or base with a -2, -3... suffix, that no other row
// of model uses. Rows with id excludeID are ignored.
func uniqueSlug(tx *gorm.DB, model any, base string, excludeID uint) (string, error) {
	base = truncateSlug(Slugify(base), maxSlugLength)
	if base == "" {
		base = "item"
	}

	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			suffix := fmt.Sprintf("-%d", i)
			candidate = truncateSlug(base, maxSlugLength-len(suffix)) + suffix
		}
		taken, err := slugTaken(tx, model, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	suffix := "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return truncateSlug(base, maxSlugLength-len(suffix)) + suffix, nil
}

func slugTaken(tx *gorm.DB, model any, slug string, excludeID uint) (bool, error) {
	query := tx.Model(model).Where("LOWER(slug) = ?", strings.ToLower(slug))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
