package db

import "time"

// ContactMessage is a submission from the public contact form.
// SubmittedAt is stamped by the database layer on insert.
type ContactMessage struct {
	Model
	Name        string    `gorm:"size:150;not null" json:"name"`
	Email       string    `gorm:"size:254;not null" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Subject     string    `gorm:"size:200;not null" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	IsRead      bool      `gorm:"not null" json:"is_read"`
}
