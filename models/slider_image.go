package models

import "time"

// SliderSections are the named placements a slider image can belong to.
var SliderSections = []string{"hero", "streaming", "movies", "sports", "channels"}

func IsValidSliderSection(s string) bool {
	for _, v := range SliderSections {
		if v == s {
			return true
		}
	}
	return false
}

type SliderImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Section      string    `gorm:"size:50;index" json:"section"`
	ImageURL     string    `gorm:"size:500" json:"image_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
