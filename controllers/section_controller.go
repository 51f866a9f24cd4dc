package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iptv-backend/services"
	"iptv-backend/utils"
)

type SectionController struct {
	sections *services.SectionService
}

func NewSectionController(sections *services.SectionService) *SectionController {
	return &SectionController{sections: sections}
}

func (sc *SectionController) List(c *gin.Context) {
	sections, err := sc.sections.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sections)
}

func (sc *SectionController) Get(c *gin.Context) {
	section, err := sc.sections.GetByKey(c.Param("key"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, section)
}

func (sc *SectionController) Upsert(c *gin.Context) {
	var patch services.SectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	section, err := sc.sections.Upsert(c.Param("key"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, section)
}

func (sc *SectionController) Delete(c *gin.Context) {
	if err := sc.sections.DeleteByKey(c.Param("key")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "section deleted"})
}
