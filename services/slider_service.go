package services

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

type SliderPatch struct {
	Section      *string `json:"section"`
	DisplayOrder *int    `json:"display_order"`
}

type SliderService struct {
	db        *gorm.DB
	uploadDir string
}

func NewSliderService(db *gorm.DB, uploadDir string) *SliderService {
	return &SliderService{db: db, uploadDir: uploadDir}
}

func (s *SliderService) List(section string) ([]models.SliderImage, error) {
	query := s.db.Order("display_order ASC, id ASC")
	if section != "" {
		if !models.IsValidSliderSection(section) {
			return nil, utils.NewValidationError("section")
		}
		query = query.Where("section = ?", section)
	}
	var images []models.SliderImage
	err := query.Find(&images).Error
	return images, err
}

func (s *SliderService) Create(section, imageURL string) (*models.SliderImage, error) {
	if !models.IsValidSliderSection(section) {
		return nil, utils.NewValidationError("section")
	}
	if imageURL == "" {
		return nil, utils.NewValidationError("image")
	}

	image := models.SliderImage{
		Section:      section,
		ImageURL:     imageURL,
		DisplayOrder: nextDisplayOrder(s.db.Model(&models.SliderImage{}).Where("section = ?", section)),
	}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *SliderService) Update(id uint, patch SliderPatch) (*models.SliderImage, error) {
	var image models.SliderImage
	if err := s.db.First(&image, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Section != nil {
		if !models.IsValidSliderSection(*patch.Section) {
			return nil, utils.NewValidationError("section")
		}
		updates["section"] = *patch.Section
	}
	if patch.DisplayOrder != nil {
		updates["display_order"] = *patch.DisplayOrder
	}
	if len(updates) > 0 {
		if err := s.db.Model(&image).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &image, nil
}

// Delete removes the row and best-effort unlinks the stored file.
func (s *SliderService) Delete(id uint) error {
	var image models.SliderImage
	if err := s.db.First(&image, id).Error; err != nil {
		return err
	}
	if err := s.db.Delete(&image).Error; err != nil {
		return err
	}

	if rel, ok := strings.CutPrefix(image.ImageURL, "/uploads/"); ok {
		path := filepath.Join(s.uploadDir, filepath.FromSlash(rel))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: failed to remove slider file %s: %v", path, err)
		}
	}
	return nil
}
