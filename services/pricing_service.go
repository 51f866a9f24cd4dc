package services

import (
	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

type PlanInput struct {
	TabID        uint     `json:"tab_id"`
	Title        string   `json:"title"`
	Price        string   `json:"price"`
	IsPopular    bool     `json:"is_popular"`
	UseWhatsapp  bool     `json:"use_whatsapp"`
	CheckoutLink string   `json:"checkout_link"`
	DisplayOrder *int     `json:"display_order"`
	Features     []string `json:"features"`
}

type PlanPatch struct {
	TabID        *uint     `json:"tab_id"`
	Title        *string   `json:"title"`
	Price        *string   `json:"price"`
	IsPopular    *bool     `json:"is_popular"`
	UseWhatsapp  *bool     `json:"use_whatsapp"`
	CheckoutLink *string   `json:"checkout_link"`
	DisplayOrder *int      `json:"display_order"`
	Features     *[]string `json:"features"`
}

type PricingService struct {
	db *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{db: db}
}

// ListTabs returns tabs with their plans and features pre-loaded, every
// level ordered by display_order then id.
func (s *PricingService) ListTabs() ([]models.PricingTab, error) {
	var tabs []models.PricingTab
	err := s.db.
		Preload("Plans", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Preload("Plans.Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Order("display_order ASC, id ASC").
		Find(&tabs).Error
	return tabs, err
}

func (s *PricingService) CreateTab(name string, displayOrder *int) (*models.PricingTab, error) {
	if name == "" {
		return nil, utils.NewValidationError("name")
	}

	tab := models.PricingTab{Name: name}
	if displayOrder != nil {
		tab.DisplayOrder = *displayOrder
	} else {
		tab.DisplayOrder = nextDisplayOrder(s.db.Model(&models.PricingTab{}))
	}

	if err := s.db.Create(&tab).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.NewConflictError("tab '%s' already exists", name)
		}
		return nil, err
	}
	return &tab, nil
}

func (s *PricingService) UpdateTab(id uint, name *string, displayOrder *int) (*models.PricingTab, error) {
	var tab models.PricingTab
	if err := s.db.First(&tab, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != nil {
		if *name == "" {
			return nil, utils.NewValidationError("name")
		}
		updates["name"] = *name
	}
	if displayOrder != nil {
		updates["display_order"] = *displayOrder
	}
	if len(updates) > 0 {
		if err := s.db.Model(&tab).Updates(updates).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				return nil, utils.NewConflictError("tab '%s' already exists", *name)
			}
			return nil, err
		}
	}
	return &tab, nil
}

// DeleteTab relies on the FK cascade to remove the tab's plans and their
// features in the same statement.
func (s *PricingService) DeleteTab(id uint) error {
	result := s.db.Delete(&models.PricingTab{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (s *PricingService) CreatePlan(input PlanInput) (*models.Plan, error) {
	var missing []string
	if input.TabID == 0 {
		missing = append(missing, "tab_id")
	}
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Price == "" {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, utils.NewValidationError(missing...)
	}

	var tab models.PricingTab
	if err := s.db.First(&tab, input.TabID).Error; err != nil {
		return nil, utils.NewValidationError("tab_id")
	}

	plan := models.Plan{
		TabID:        input.TabID,
		Title:        input.Title,
		Price:        input.Price,
		IsPopular:    input.IsPopular,
		UseWhatsapp:  input.UseWhatsapp,
		CheckoutLink: input.CheckoutLink,
	}
	if input.DisplayOrder != nil {
		plan.DisplayOrder = *input.DisplayOrder
	} else {
		plan.DisplayOrder = nextDisplayOrder(s.db.Model(&models.Plan{}).Where("tab_id = ?", input.TabID))
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if plan.IsPopular {
			if err := tx.Model(&models.Plan{}).
				Where("tab_id = ?", plan.TabID).
				Update("is_popular", false).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		for i, text := range input.Features {
			feature := models.PlanFeature{PlanID: plan.ID, FeatureText: text, DisplayOrder: i + 1}
			if err := tx.Create(&feature).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetPlan(plan.ID)
}

func (s *PricingService) GetPlan(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan applies only the fields present in the patch. Setting
// is_popular clears the flag on the tab's other plans inside the same
// transaction, so at most one plan per tab stays popular. When Features is
// present the existing feature rows are replaced wholesale.
func (s *PricingService) UpdatePlan(id uint, patch PlanPatch) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, id).Error; err != nil {
		return nil, err
	}

	if patch.TabID != nil {
		var tab models.PricingTab
		if err := s.db.First(&tab, *patch.TabID).Error; err != nil {
			return nil, utils.NewValidationError("tab_id")
		}
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, utils.NewValidationError("title")
	}
	if patch.Price != nil && *patch.Price == "" {
		return nil, utils.NewValidationError("price")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tabID := plan.TabID
		if patch.TabID != nil {
			tabID = *patch.TabID
		}

		popular := plan.IsPopular
		if patch.IsPopular != nil {
			popular = *patch.IsPopular
		}
		if popular {
			if err := tx.Model(&models.Plan{}).
				Where("tab_id = ? AND id <> ?", tabID, plan.ID).
				Update("is_popular", false).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if patch.TabID != nil {
			updates["tab_id"] = *patch.TabID
		}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Price != nil {
			updates["price"] = *patch.Price
		}
		if patch.IsPopular != nil {
			updates["is_popular"] = *patch.IsPopular
		}
		if patch.UseWhatsapp != nil {
			updates["use_whatsapp"] = *patch.UseWhatsapp
		}
		if patch.CheckoutLink != nil {
			updates["checkout_link"] = *patch.CheckoutLink
		}
		if patch.DisplayOrder != nil {
			updates["display_order"] = *patch.DisplayOrder
		}
		if len(updates) > 0 {
			if err := tx.Model(&plan).Updates(updates).Error; err != nil {
				return err
			}
		}

		if patch.Features != nil {
			if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.PlanFeature{}).Error; err != nil {
				return err
			}
			for i, text := range *patch.Features {
				feature := models.PlanFeature{PlanID: plan.ID, FeatureText: text, DisplayOrder: i + 1}
				if err := tx.Create(&feature).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetPlan(plan.ID)
}

func (s *PricingService) DeletePlan(id uint) error {
	result := s.db.Delete(&models.Plan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (s *PricingService) DeleteFeature(id uint) error {
	result := s.db.Delete(&models.PlanFeature{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// nextDisplayOrder returns max(display_order)+1 within the given scope.
func nextDisplayOrder(query *gorm.DB) int {
	var max *int
	query.Select("MAX(display_order)").Scan(&max)
	if max == nil {
		return 1
	}
	return *max + 1
}
