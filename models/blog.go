package models

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

type Blog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255" json:"title"`
	Slug          string    `gorm:"uniqueIndex;size:255" json:"slug"`
	Content       string    `gorm:"type:longtext" json:"content"`
	Excerpt       string    `gorm:"type:text" json:"excerpt"`
	FeaturedImage string    `gorm:"size:500" json:"featured_image"`
	Author        string    `gorm:"size:150" json:"author"`
	Status        string    `gorm:"size:20;default:draft" json:"status"`
	Published     bool      `gorm:"default:false" json:"published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Images []BlogImage `gorm:"foreignKey:BlogID;constraint:OnDelete:SET NULL" json:"images,omitempty"`
}

// BlogImage may exist without a blog (uploaded first, attached later).
type BlogImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    *uint     `gorm:"index" json:"blog_id"`
	ImageURL  string    `gorm:"size:500" json:"image_url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	Caption   string    `gorm:"size:500" json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}
