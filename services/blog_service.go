package services

import (
	"strings"

	"gorm.io/gorm"

	"iptv-backend/models"
	"iptv-backend/utils"
)

type BlogInput struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Author        string `json:"author"`
	Status        string `json:"status"`
}

type BlogPatch struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt"`
	FeaturedImage *string `json:"featured_image"`
	Author        *string `json:"author"`
	Status        *string `json:"status"`
}

type BlogPage struct {
	Blogs      []models.Blog `json:"blogs"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"total_pages"`
}

type BlogImageInput struct {
	BlogID   *uint  `json:"blog_id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
	Caption  string `json:"caption"`
}

type BlogService struct {
	db *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

// ListPublished returns published posts, newest first.
func (s *BlogService) ListPublished(page, limit int) (*BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 9
	}

	query := s.db.Model(&models.Blog{}).Where("published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var blogs []models.Blog
	err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &BlogPage{Blogs: blogs, Page: page, Limit: limit, Total: total, TotalPages: totalPages}, nil
}

func (s *BlogService) ListAll() ([]models.Blog, error) {
	var blogs []models.Blog
	err := s.db.Order("created_at DESC, id DESC").Find(&blogs).Error
	return blogs, err
}

func (s *BlogService) GetPublishedBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.
		Preload("Images").
		Where("slug = ? AND published = ?", slug, true).
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) Get(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.Preload("Images").First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// Create derives the slug from the title. A colliding slug fails with a
// conflict rather than silently disambiguating; the unique index backstops
// concurrent creates with the same title (last writer fails).
func (s *BlogService) Create(input BlogInput) (*models.Blog, error) {
	var missing []string
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(input.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return nil, utils.NewValidationError(missing...)
	}

	status := input.Status
	if status == "" {
		status = models.BlogStatusDraft
	}
	if status != models.BlogStatusDraft && status != models.BlogStatusPublished {
		return nil, utils.NewValidationError("status")
	}

	slug := utils.Slugify(input.Title)
	if slug == "" {
		return nil, utils.NewValidationError("title")
	}

	var existing int64
	if err := s.db.Model(&models.Blog{}).Where("slug = ?", slug).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, utils.NewConflictError("a post with slug '%s' already exists", slug)
	}

	blog := models.Blog{
		Title:         input.Title,
		Slug:          slug,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		FeaturedImage: input.FeaturedImage,
		Author:        input.Author,
		Status:        status,
		Published:     status == models.BlogStatusPublished,
	}
	if err := s.db.Create(&blog).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.NewConflictError("a post with slug '%s' already exists", slug)
		}
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) Update(id uint, patch BlogPatch) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.First(&blog, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, utils.NewValidationError("title")
		}
		slug := utils.Slugify(*patch.Title)
		if slug == "" {
			return nil, utils.NewValidationError("title")
		}
		if slug != blog.Slug {
			var existing int64
			if err := s.db.Model(&models.Blog{}).
				Where("slug = ? AND id <> ?", slug, id).
				Count(&existing).Error; err != nil {
				return nil, err
			}
			if existing > 0 {
				return nil, utils.NewConflictError("a post with slug '%s' already exists", slug)
			}
		}
		updates["title"] = *patch.Title
		updates["slug"] = slug
	}
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return nil, utils.NewValidationError("content")
		}
		updates["content"] = *patch.Content
	}
	if patch.Excerpt != nil {
		updates["excerpt"] = *patch.Excerpt
	}
	if patch.FeaturedImage != nil {
		updates["featured_image"] = *patch.FeaturedImage
	}
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.Status != nil {
		if *patch.Status != models.BlogStatusDraft && *patch.Status != models.BlogStatusPublished {
			return nil, utils.NewValidationError("status")
		}
		updates["status"] = *patch.Status
		updates["published"] = *patch.Status == models.BlogStatusPublished
	}

	if len(updates) > 0 {
		if err := s.db.Model(&blog).Updates(updates).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				return nil, utils.NewConflictError("a post with that slug already exists")
			}
			return nil, err
		}
	}

	if err := s.db.First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Detach images first; MySQL enforces the FK even with SET NULL
		// pending on older schemas.
		if err := tx.Model(&models.BlogImage{}).
			Where("blog_id = ?", id).
			Update("blog_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Blog{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrNotFound
		}
		return nil
	})
}

func (s *BlogService) ListImages(blogID *uint) ([]models.BlogImage, error) {
	query := s.db.Order("created_at DESC, id DESC")
	if blogID != nil {
		query = query.Where("blog_id = ?", *blogID)
	}
	var images []models.BlogImage
	err := query.Find(&images).Error
	return images, err
}

func (s *BlogService) CreateImage(input BlogImageInput) (*models.BlogImage, error) {
	if input.ImageURL == "" {
		return nil, utils.NewValidationError("image_url")
	}
	if input.BlogID != nil {
		var blog models.Blog
		if err := s.db.First(&blog, *input.BlogID).Error; err != nil {
			return nil, utils.NewValidationError("blog_id")
		}
	}

	image := models.BlogImage{
		BlogID:   input.BlogID,
		ImageURL: input.ImageURL,
		AltText:  input.AltText,
		Caption:  input.Caption,
	}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *BlogService) DeleteImage(id uint) error {
	result := s.db.Delete(&models.BlogImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
