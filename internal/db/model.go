package db

import (
	"log"

	"github.com/dancestudio/internal/markdown"
)

// Model carries the generated identifier shared by every content table.
type Model struct {
	ID uint `gorm:"primaryKey" json:"id"`
}

// Key returns the record identifier.
func (m Model) Key() uint {
	return m.ID
}

func renderBody(table string, id uint, source string) string {
	rendered, err := markdown.Render(source)
	if err != nil {
		log.Printf("render markdown for %s #%d: %v", table, id, err)
		return ""
	}
	return rendered
}
