package services

import (
	"errors"

	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

type SectionPatch struct {
	Heading     *string `json:"heading"`
	Description *string `json:"description"`
}

type SectionService struct {
	db *gorm.DB
}

func NewSectionService(db *gorm.DB) *SectionService {
	return &SectionService{db: db}
}

func (s *SectionService) List() ([]models.Section, error) {
	var sections []models.Section
	err := s.db.Order("section_key ASC").Find(&sections).Error
	return sections, err
}

func (s *SectionService) GetByKey(key string) (*models.Section, error) {
	var section models.Section
	if err := s.db.Where("section_key = ?", key).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// Upsert creates the section on first write to a key, otherwise patches
// only the present fields.
func (s *SectionService) Upsert(key string, patch SectionPatch) (*models.Section, error) {
	if key == "" {
		return nil, utils.NewValidationError("section_key")
	}

	var section models.Section
	err := s.db.Where("section_key = ?", key).First(&section).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		section = models.Section{SectionKey: key}
		if patch.Heading != nil {
			section.Heading = *patch.Heading
		}
		if patch.Description != nil {
			section.Description = *patch.Description
		}
		if err := s.db.Create(&section).Error; err != nil {
			return nil, err
		}
		return &section, nil
	}

	updates := map[string]interface{}{}
	if patch.Heading != nil {
		updates["heading"] = *patch.Heading
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if len(updates) > 0 {
		if err := s.db.Model(&section).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &section, nil
}

func (s *SectionService) DeleteByKey(key string) error {
	result := s.db.Where("section_key = ?", key).Delete(&models.Section{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
