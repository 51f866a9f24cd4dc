package services

import (
	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

type StatInput struct {
	StatKey      string `json:"stat_key"`
	StatValue    string `json:"stat_value"`
	StatLabel    string `json:"stat_label"`
	DisplayOrder *int   `json:"display_order"`
}

type StatPatch struct {
	StatValue    *string `json:"stat_value"`
	StatLabel    *string `json:"stat_label"`
	DisplayOrder *int    `json:"display_order"`
}

type StatService struct {
	db *gorm.DB
}

func NewStatService(db *gorm.DB) *StatService {
	return &StatService{db: db}
}

func (s *StatService) List() ([]models.Stat, error) {
	var stats []models.Stat
	err := s.db.Order("display_order ASC, id ASC").Find(&stats).Error
	return stats, err
}

func (s *StatService) Create(input StatInput) (*models.Stat, error) {
	var missing []string
	if input.StatKey == "" {
		missing = append(missing, "stat_key")
	}
	if input.StatValue == "" {
		missing = append(missing, "stat_value")
	}
	if len(missing) > 0 {
		return nil, utils.NewValidationError(missing...)
	}

	stat := models.Stat{
		StatKey:   input.StatKey,
		StatValue: input.StatValue,
		StatLabel: input.StatLabel,
	}
	if input.DisplayOrder != nil {
		stat.DisplayOrder = *input.DisplayOrder
	} else {
		stat.DisplayOrder = nextDisplayOrder(s.db.Model(&models.Stat{}))
	}

	if err := s.db.Create(&stat).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.NewConflictError("stat '%s' already exists", input.StatKey)
		}
		return nil, err
	}
	return &stat, nil
}

func (s *StatService) Update(id uint, patch StatPatch) (*models.Stat, error) {
	var stat models.Stat
	if err := s.db.First(&stat, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.StatValue != nil {
		updates["stat_value"] = *patch.StatValue
	}
	if patch.StatLabel != nil {
		updates["stat_label"] = *patch.StatLabel
	}
	if patch.DisplayOrder != nil {
		updates["display_order"] = *patch.DisplayOrder
	}
	if len(updates) > 0 {
		if err := s.db.Model(&stat).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &stat, nil
}

func (s *StatService) Delete(id uint) error {
	result := s.db.Delete(&models.Stat{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
