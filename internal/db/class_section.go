package db

// ClassSection is one entry of the studio's class timetable.
type ClassSection struct {
	Model
	Name        string `gorm:"size:150;not null" json:"name"`
	Slug        string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text;not null" json:"description"`
	AgeGroup    string `gorm:"size:100;not null" json:"age_group"`
	Level       string `gorm:"size:100;not null" json:"level"`
	Schedule    string `gorm:"size:200;not null" json:"schedule"`
	IsActive    bool   `gorm:"not null" json:"is_active"`
	Order       int    `gorm:"column:sort_order;not null;index" json:"order"`
}
