package models

import "time"

// Stat is a headline number shown on the landing page (e.g. channels count).
type Stat struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StatKey      string    `gorm:"uniqueIndex;size:100" json:"stat_key"`
	StatValue    string    `gorm:"size:100" json:"stat_value"`
	StatLabel    string    `gorm:"size:255" json:"stat_label"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
