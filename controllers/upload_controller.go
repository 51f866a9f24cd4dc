package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iptv-backend/services"
	"iptv-backend/utils"
)

type UploadController struct {
	uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{uploads: uploads}
}

// Upload handles POST /api/upload/:category for logo, favicon, blog-image
// and slider files.
func (uc *UploadController) Upload(c *gin.Context) {
	category := c.Param("category")
	if !services.IsUploadCategory(category) {
		utils.RespondError(c, utils.NewValidationError("category"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("file"))
		return
	}

	result, err := uc.uploads.Save(category, file)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
