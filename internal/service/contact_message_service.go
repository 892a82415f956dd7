package service

import (
	"github.com/dancestudio/internal/db"
	"gorm.io/gorm"
)

// ContactMessageService stores contact form submissions.
type ContactMessageService = Resource[db.ContactMessage, ContactMessagePayload]

// ContactMessagePayload is the writable part of a contact message.
// submitted_at is always stamped by the store.
type ContactMessagePayload struct {
	Name    Optional[string] `json:"name"`
	Email   Optional[string] `json:"email"`
	Phone   Optional[string] `json:"phone"`
	Subject Optional[string] `json:"subject"`
	Message Optional[string] `json:"message"`
	IsRead  Optional[bool]   `json:"is_read"`
}

// Apply copies the payload onto msg.
func (p ContactMessagePayload) Apply(msg *db.ContactMessage, partial bool) FieldErrors {
	b := newBinder(partial)
	b.text("name", p.Name, &msg.Name, textRule{required: true, max: 150})
	b.text("email", p.Email, &msg.Email, textRule{required: true, max: 254, normalize: lowerRule, validate: emailRule})
	b.text("phone", p.Phone, &msg.Phone, textRule{max: 50})
	b.text("subject", p.Subject, &msg.Subject, textRule{required: true, max: 200})
	b.text("message", p.Message, &msg.Message, textRule{required: true})
	b.flag("is_read", p.IsRead, &msg.IsRead)
	return b.errs
}

// NewContactMessageService returns the contact message resource.
func NewContactMessageService(gdb *gorm.DB) *ContactMessageService {
	return NewResource[db.ContactMessage, ContactMessagePayload](gdb, Kind[db.ContactMessage]{
		Name:      "contact message",
		ListOrder: []string{"id asc"},
	})
}
