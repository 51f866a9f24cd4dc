package services

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"iptv-backend/models"
)

// SettingPatch carries only the fields present in the request; nil fields
// are left untouched.
type SettingPatch struct {
	SiteName       *string         `json:"site_name"`
	Tagline        *string         `json:"tagline"`
	Logo           *string         `json:"logo"`
	Favicon        *string         `json:"favicon"`
	ContactEmail   *string         `json:"contact_email"`
	ContactPhone   *string         `json:"contact_phone"`
	WhatsappNumber *string         `json:"whatsapp_number"`
	SeoTitle       *string         `json:"seo_title"`
	SeoDescription *string         `json:"seo_description"`
	SeoKeywords    *string         `json:"seo_keywords"`
	HeroHeading    *string         `json:"hero_heading"`
	HeroSubheading *string         `json:"hero_subheading"`
	HeroCtaText    *string         `json:"hero_cta_text"`
	HeroCtaLink    *string         `json:"hero_cta_link"`
	FooterText     *string         `json:"footer_text"`
	SocialLinks    *datatypes.JSON `json:"social_links"`
}

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) Get() (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Setting{ID: 1}, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (s *SettingsService) Update(patch SettingPatch) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		setting = models.Setting{ID: 1}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if patch.SiteName != nil {
		updates["site_name"] = *patch.SiteName
	}
	if patch.Tagline != nil {
		updates["tagline"] = *patch.Tagline
	}
	if patch.Logo != nil {
		updates["logo"] = *patch.Logo
	}
	if patch.Favicon != nil {
		updates["favicon"] = *patch.Favicon
	}
	if patch.ContactEmail != nil {
		updates["contact_email"] = *patch.ContactEmail
	}
	if patch.ContactPhone != nil {
		updates["contact_phone"] = *patch.ContactPhone
	}
	if patch.WhatsappNumber != nil {
		updates["whatsapp_number"] = *patch.WhatsappNumber
	}
	if patch.SeoTitle != nil {
		updates["seo_title"] = *patch.SeoTitle
	}
	if patch.SeoDescription != nil {
		updates["seo_description"] = *patch.SeoDescription
	}
	if patch.SeoKeywords != nil {
		updates["seo_keywords"] = *patch.SeoKeywords
	}
	if patch.HeroHeading != nil {
		updates["hero_heading"] = *patch.HeroHeading
	}
	if patch.HeroSubheading != nil {
		updates["hero_subheading"] = *patch.HeroSubheading
	}
	if patch.HeroCtaText != nil {
		updates["hero_cta_text"] = *patch.HeroCtaText
	}
	if patch.HeroCtaLink != nil {
		updates["hero_cta_link"] = *patch.HeroCtaLink
	}
	if patch.FooterText != nil {
		updates["footer_text"] = *patch.FooterText
	}
	if patch.SocialLinks != nil {
		updates["social_links"] = *patch.SocialLinks
	}

	if len(updates) > 0 {
		if err := s.db.Model(&setting).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&setting, setting.ID).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
