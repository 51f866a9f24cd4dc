package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iptv-backend/services"
	"iptv-backend/utils"
)

type SliderController struct {
	sliders *services.SliderService
	uploads *services.UploadService
}

func NewSliderController(sliders *services.SliderService, uploads *services.UploadService) *SliderController {
	return &SliderController{sliders: sliders, uploads: uploads}
}

func (sc *SliderController) List(c *gin.Context) {
	images, err := sc.sliders.List(c.Query("section"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, images)
}

// Create accepts a multipart form with the image file and its section.
// The file is validated and stored before the row is written, so a
// rejected upload leaves no row behind.
func (sc *SliderController) Create(c *gin.Context) {
	section := c.PostForm("section")

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("image"))
		return
	}

	result, err := sc.uploads.Save("slider", file)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	image, err := sc.sliders.Create(section, result.URL)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, image)
}

func (sc *SliderController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch services.SliderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	image, err := sc.sliders.Update(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, image)
}

func (sc *SliderController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.sliders.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "slider image deleted"})
}
