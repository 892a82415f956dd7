package service

import (
	"github.com/dancestudio/internal/db"
	"gorm.io/gorm"
)

// ClassSectionService serves the class timetable.
type ClassSectionService = Resource[db.ClassSection, ClassSectionPayload]

// ClassSectionPayload is the writable part of a class section. Slug is
// optional and derived from the name when empty.
type ClassSectionPayload struct {
	Name        Optional[string] `json:"name"`
	Slug        Optional[string] `json:"slug"`
	Description Optional[string] `json:"description"`
	AgeGroup    Optional[string] `json:"age_group"`
	Level       Optional[string] `json:"level"`
	Schedule    Optional[string] `json:"schedule"`
	IsActive    Optional[bool]   `json:"is_active"`
	Order       Optional[int]    `json:"order"`
}

// Apply copies the payload onto section.
func (p ClassSectionPayload) Apply(section *db.ClassSection, partial bool) FieldErrors {
	b := newBinder(partial)
	b.text("name", p.Name, &section.Name, textRule{required: true, max: 150})
	b.text("slug", p.Slug, &section.Slug, slugRule(false))
	b.text("description", p.Description, &section.Description, textRule{required: true})
	b.text("age_group", p.AgeGroup, &section.AgeGroup, textRule{required: true, max: 100})
	b.text("level", p.Level, &section.Level, textRule{required: true, max: 100})
	b.text("schedule", p.Schedule, &section.Schedule, textRule{required: true, max: 200})
	b.flag("is_active", p.IsActive, &section.IsActive)
	b.order("order", p.Order, &section.Order)
	return b.errs
}

// NewClassSectionService returns the class section resource.
func NewClassSectionService(gdb *gorm.DB) *ClassSectionService {
	return NewResource[db.ClassSection, ClassSectionPayload](gdb, Kind[db.ClassSection]{
		Name:       "class section",
		Defaults:   func() db.ClassSection { return db.ClassSection{IsActive: true} },
		ListOrder:  []string{"id asc"},
		Slug:       func(s *db.ClassSection) *string { return &s.Slug },
		SlugSource: func(s *db.ClassSection) string { return s.Name },
		Order:      func(s *db.ClassSection) *int { return &s.Order },
	})
}
