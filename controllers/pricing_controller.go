package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iptv-backend/services"
	"iptv-backend/utils"
)

type PricingController struct {
	pricing *services.PricingService
}

func NewPricingController(pricing *services.PricingService) *PricingController {
	return &PricingController{pricing: pricing}
}

type tabPayload struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"display_order"`
}

// GetPricing returns the full tabs→plans→features tree for the public
// pricing page.
func (pc *PricingController) GetPricing(c *gin.Context) {
	tabs, err := pc.pricing.ListTabs()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tabs)
}

func (pc *PricingController) CreateTab(c *gin.Context) {
	var payload tabPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	name := ""
	if payload.Name != nil {
		name = *payload.Name
	}
	tab, err := pc.pricing.CreateTab(name, payload.DisplayOrder)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, tab)
}

func (pc *PricingController) UpdateTab(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload tabPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	tab, err := pc.pricing.UpdateTab(id, payload.Name, payload.DisplayOrder)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tab)
}

func (pc *PricingController) DeleteTab(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := pc.pricing.DeleteTab(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "tab deleted"})
}

func (pc *PricingController) CreatePlan(c *gin.Context) {
	var input services.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	plan, err := pc.pricing.CreatePlan(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, plan)
}

func (pc *PricingController) UpdatePlan(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch services.PlanPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	plan, err := pc.pricing.UpdatePlan(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, plan)
}

func (pc *PricingController) DeletePlan(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := pc.pricing.DeletePlan(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "plan deleted"})
}

func (pc *PricingController) DeleteFeature(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := pc.pricing.DeleteFeature(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "feature deleted"})
}
