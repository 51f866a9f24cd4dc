package models

import "time"

type FAQ struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Question     string    `gorm:"type:text" json:"question"`
	Answer       string    `gorm:"type:text" json:"answer"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
