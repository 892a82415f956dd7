package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Record is implemented by every stored entity through db.Model.
type Record interface {
	Key() uint
}

// Payload is a decoded request body that knows how to copy itself onto a
// record. With partial set, required fields may be absent.
type Payload[T any] interface {
	Apply(dst *T, partial bool) FieldErrors
}

// Scope narrows a list query.
type Scope = func(*gorm.DB) *gorm.DB

// Kind holds the per-entity policy a Resource needs. Optional hooks are nil
// for entities that do not use them.
type Kind[T any] struct {
	// Name is used in messages such as "page with this slug already exists."
	Name      string
	Defaults  func() T
	ListOrder []string

	// Slug exposes the slug field for uniqueness checks. When SlugSource is
	// also set an empty slug is derived from it.
	Slug       func(*T) *string
	SlugSource func(*T) string

	// Order exposes the display order; 0 on create means "assign next".
	Order func(*T) *int

	// Check runs record-level rules once every field passed.
	Check func(tx *gorm.DB, rec *T) (FieldErrors, error)

	// Expand fills computed relations after a read or write.
	Expand func(tx *gorm.DB, recs []T) error
}

// Resource implements the create/read/update/delete contract shared by
// every entity.
type Resource[T Record, P Payload[T]] struct {
	db   *gorm.DB
	kind Kind[T]
}

// NewResource returns a Resource for kind backed by gdb.
func NewResource[T Record, P Payload[T]](gdb *gorm.DB, kind Kind[T]) *Resource[T, P] {
	return &Resource[T, P]{db: gdb, kind: kind}
}

// Name returns the entity name.
func (r *Resource[T, P]) Name() string {
	return r.kind.Name
}

// HasSlug reports whether the entity can be looked up by slug.
func (r *Resource[T, P]) HasSlug() bool {
	return r.kind.Slug != nil
}

// List returns every record, narrowed by scopes, in the entity's list order.
func (r *Resource[T, P]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	query := r.db.WithContext(ctx).Scopes(scopes...)
	for _, order := range r.kind.ListOrder {
		query = query.Order(order)
	}

	items := make([]T, 0)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	if err := r.expand(r.db.WithContext(ctx), items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a record by id.
func (r *Resource[T, P]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, notFound(err)
	}
	return r.expandOne(r.db.WithContext(ctx), rec)
}

// GetBySlug fetches a record by slug, ignoring case.
func (r *Resource[T, P]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	if !r.HasSlug() {
		return nil, ErrNotFound
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrNotFound
	}

	var rec T
	if err := r.db.WithContext(ctx).Where("LOWER(slug) = ?", slug).First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	return r.expandOne(r.db.WithContext(ctx), rec)
}

// Create validates payload against the entity defaults and inserts it.
func (r *Resource[T, P]) Create(ctx context.Context, payload P) (*T, error) {
	var rec T
	if r.kind.Defaults != nil {
		rec = r.kind.Defaults()
	}
	errs := payload.Apply(&rec, false)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.validate(tx, &rec, errs, 0); err != nil {
			return err
		}
		if r.kind.Order != nil {
			if order := r.kind.Order(&rec); *order == 0 {
				next, err := nextSortOrder[T](tx)
				if err != nil {
					return err
				}
				*order = next
			}
		}
		if err := tx.Create(&rec).Error; err != nil {
			return r.translate(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.expandOne(r.db.WithContext(ctx), rec)
}

// Update merges payload onto the stored record and saves it. A full update
// (partial false) requires every required field.
func (r *Resource[T, P]) Update(ctx context.Context, id uint, payload P, partial bool) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return notFound(err)
		}
		errs := payload.Apply(&rec, partial)
		if err := r.validate(tx, &rec, errs, id); err != nil {
			return err
		}
		if err := tx.Save(&rec).Error; err != nil {
			return r.translate(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.expandOne(r.db.WithContext(ctx), rec)
}

// Delete removes the record with id.
func (r *Resource[T, P]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored records.
func (r *Resource[T, P]) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Resource[T, P]) validate(tx *gorm.DB, rec *T, errs FieldErrors, excludeID uint) error {
	if errs == nil {
		errs = FieldErrors{}
	}

	if r.kind.Slug != nil {
		if err := r.resolveSlug(tx, rec, errs, excludeID); err != nil {
			return err
		}
	}

	if len(errs) == 0 && r.kind.Check != nil {
		extra, err := r.kind.Check(tx, rec)
		if err != nil {
			return err
		}
		errs.Merge(extra)
	}
	return errs.Err()
}

func (r *Resource[T, P]) resolveSlug(tx *gorm.DB, rec *T, errs FieldErrors, excludeID uint) error {
	slug := r.kind.Slug(rec)
	if *slug == "" {
		if r.kind.SlugSource == nil || len(errs) > 0 {
			return nil
		}
		derived, err := uniqueSlug(tx, new(T), r.kind.SlugSource(rec), excludeID)
		if err != nil {
			return err
		}
		*slug = derived
		return nil
	}
	if _, invalid := errs["slug"]; invalid {
		return nil
	}

	taken, err := slugTaken(tx, new(T), *slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		errs.Add("slug", r.duplicateSlugMessage())
	}
	return nil
}

func (r *Resource[T, P]) duplicateSlugMessage() string {
	return r.kind.Name + " with this slug already exists."
}

// translate turns a unique index violation into the same validation error
// the pre-write check reports.
func (r *Resource[T, P]) translate(err error) error {
	if isUniqueViolation(err) {
		errs := FieldErrors{}
		errs.Add("slug", r.duplicateSlugMessage())
		return errs.Err()
	}
	return err
}

func (r *Resource[T, P]) expand(tx *gorm.DB, items []T) error {
	if r.kind.Expand == nil || len(items) == 0 {
		return nil
	}
	return r.kind.Expand(tx, items)
}

func (r *Resource[T, P]) expandOne(tx *gorm.DB, rec T) (*T, error) {
	items := []T{rec}
	if err := r.expand(tx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
