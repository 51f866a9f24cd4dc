package models

import "time"

// PricingTab groups plans by a display label (e.g. "2 Devices").
// Deleting a tab cascades to its plans and their features at the DB layer.
type PricingTab struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;size:100" json:"name"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Plans []Plan `gorm:"foreignKey:TabID;constraint:OnDelete:CASCADE" json:"plans,omitempty"`
}

type Plan struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TabID        uint      `gorm:"index;not null" json:"tab_id"`
	Title        string    `gorm:"size:255" json:"title"`
	Price        string    `gorm:"size:50" json:"price"`
	IsPopular    bool      `gorm:"default:false" json:"is_popular"`
	UseWhatsapp  bool      `gorm:"default:false" json:"use_whatsapp"`
	CheckoutLink string    `gorm:"size:500" json:"checkout_link"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Features []PlanFeature `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"features,omitempty"`
}

type PlanFeature struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PlanID       uint   `gorm:"index;not null" json:"plan_id"`
	FeatureText  string `gorm:"size:500" json:"feature_text"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
}
