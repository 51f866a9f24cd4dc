package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iptv-backend/services"
	"iptv-backend/utils"
)

type FAQController struct {
	faqs *services.FAQService
}

func NewFAQController(faqs *services.FAQService) *FAQController {
	return &FAQController{faqs: faqs}
}

type faqPayload struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder *int   `json:"display_order"`
}

func (fc *FAQController) List(c *gin.Context) {
	faqs, err := fc.faqs.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, faqs)
}

func (fc *FAQController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	faq, err := fc.faqs.Get(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, faq)
}

func (fc *FAQController) Create(c *gin.Context) {
	var payload faqPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	faq, err := fc.faqs.Create(payload.Question, payload.Answer, payload.DisplayOrder)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, faq)
}

func (fc *FAQController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch services.FAQPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	faq, err := fc.faqs.Update(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, faq)
}

func (fc *FAQController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := fc.faqs.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "faq deleted"})
}
