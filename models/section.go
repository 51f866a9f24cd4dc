package models

import "time"

// Section is editable heading/description copy for a page region,
// addressed by a stable key.
type Section struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SectionKey  string    `gorm:"uniqueIndex;size:100" json:"section_key"`
	Heading     string    `gorm:"size:255" json:"heading"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
