package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"iptv-backend/services"
	"iptv-backend/utils"
)

type BlogController struct {
	blogs *services.BlogService
}

func NewBlogController(blogs *services.BlogService) *BlogController {
	return &BlogController{blogs: blogs}
}

// ListPublished serves the public blog index: published posts only,
// newest first, paginated.
func (bc *BlogController) ListPublished(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "9"))

	result, err := bc.blogs.ListPublished(page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"blogs": result.Blogs,
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

func (bc *BlogController) ListAll(c *gin.Context) {
	blogs, err := bc.blogs.ListAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, blogs)
}

func (bc *BlogController) GetBySlug(c *gin.Context) {
	blog, err := bc.blogs.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, blog)
}

func (bc *BlogController) Create(c *gin.Context) {
	var input services.BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	blog, err := bc.blogs.Create(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, blog)
}

func (bc *BlogController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch services.BlogPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	blog, err := bc.blogs.Update(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, blog)
}

func (bc *BlogController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := bc.blogs.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "blog deleted"})
}

func (bc *BlogController) ListImages(c *gin.Context) {
	var blogID *uint
	if raw := c.Query("blog_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, utils.NewValidationError("blog_id"))
			return
		}
		id := uint(parsed)
		blogID = &id
	}

	images, err := bc.blogs.ListImages(blogID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, images)
}

func (bc *BlogController) CreateImage(c *gin.Context) {
	var input services.BlogImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	image, err := bc.blogs.CreateImage(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, image)
}

func (bc *BlogController) DeleteImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := bc.blogs.DeleteImage(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "image deleted"})
}
