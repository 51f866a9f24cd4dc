package services

import (
	"strings"

	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

type FAQPatch struct {
	Question     *string `json:"question"`
	Answer       *string `json:"answer"`
	DisplayOrder *int    `json:"display_order"`
}

type FAQService struct {
	db *gorm.DB
}

func NewFAQService(db *gorm.DB) *FAQService {
	return &FAQService{db: db}
}

func (s *FAQService) List() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := s.db.Order("display_order ASC, id ASC").Find(&faqs).Error
	return faqs, err
}

func (s *FAQService) Get(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	if err := s.db.First(&faq, id).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *FAQService) Create(question, answer string, displayOrder *int) (*models.FAQ, error) {
	var missing []string
	if strings.TrimSpace(question) == "" {
		missing = append(missing, "question")
	}
	if strings.TrimSpace(answer) == "" {
		missing = append(missing, "answer")
	}
	if len(missing) > 0 {
		return nil, utils.NewValidationError(missing...)
	}

	faq := models.FAQ{Question: question, Answer: answer}
	if displayOrder != nil {
		faq.DisplayOrder = *displayOrder
	} else {
		faq.DisplayOrder = nextDisplayOrder(s.db.Model(&models.FAQ{}))
	}
	if err := s.db.Create(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *FAQService) Update(id uint, patch FAQPatch) (*models.FAQ, error) {
	var faq models.FAQ
	if err := s.db.First(&faq, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Question != nil {
		if strings.TrimSpace(*patch.Question) == "" {
			return nil, utils.NewValidationError("question")
		}
		updates["question"] = *patch.Question
	}
	if patch.Answer != nil {
		if strings.TrimSpace(*patch.Answer) == "" {
			return nil, utils.NewValidationError("answer")
		}
		updates["answer"] = *patch.Answer
	}
	if patch.DisplayOrder != nil {
		updates["display_order"] = *patch.DisplayOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&faq).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &faq, nil
}

func (s *FAQService) Delete(id uint) error {
	result := s.db.Delete(&models.FAQ{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
