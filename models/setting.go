package models

import (
	"time"

	"gorm.io/datatypes"
)

// Setting is the singleton site configuration row (id=1), seeded at startup.
type Setting struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	SiteName       string         `gorm:"size:255" json:"site_name"`
	Tagline        string         `gorm:"size:255" json:"tagline"`
	Logo           string         `gorm:"size:255" json:"logo"`
	Favicon        string         `gorm:"size:255" json:"favicon"`
	ContactEmail   string         `gorm:"size:150" json:"contact_email"`
	ContactPhone   string         `gorm:"size:50" json:"contact_phone"`
	WhatsappNumber string         `gorm:"size:50" json:"whatsapp_number"`
	SeoTitle       string         `gorm:"size:255" json:"seo_title"`
	SeoDescription string         `gorm:"type:text" json:"seo_description"`
	SeoKeywords    string         `gorm:"type:text" json:"seo_keywords"`
	HeroHeading    string         `gorm:"size:255" json:"hero_heading"`
	HeroSubheading string         `gorm:"type:text" json:"hero_subheading"`
	HeroCtaText    string         `gorm:"size:100" json:"hero_cta_text"`
	HeroCtaLink    string         `gorm:"size:255" json:"hero_cta_link"`
	FooterText     string         `gorm:"type:text" json:"footer_text"`
	SocialLinks    datatypes.JSON `json:"social_links"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
