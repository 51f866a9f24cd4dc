package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iptv-backend/services"
	"iptv-backend/utils"
)

type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

func (sc *SettingsController) Get(c *gin.Context) {
	setting, err := sc.settings.Get()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

func (sc *SettingsController) Update(c *gin.Context) {
	var patch services.SettingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	setting, err := sc.settings.Update(patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
