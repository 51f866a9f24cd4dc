package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iptv-backend/controllers"
	"iptv-backend/middleware"
	"iptv-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Settings *controllers.SettingsController
	Pricing  *controllers.PricingController
	FAQs     *controllers.FAQController
	Stats    *controllers.StatController
	Sections *controllers.SectionController
	Blogs    *controllers.BlogController
	Sliders  *controllers.SliderController
	Uploads  *controllers.UploadController
}

func SetupRouter(db *gorm.DB, tokens *services.TokenService, ctrl Controllers, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", uploadDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.AuthRequired(tokens)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			status := "ok"
			if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
				status = "degraded"
			}
			c.JSON(http.StatusOK, gin.H{"status": status})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrl.Auth.Login)
			auth.POST("/forgot-password", ctrl.Auth.ForgotPassword)
			auth.POST("/reset-password", ctrl.Auth.ResetPassword)
			auth.GET("/me", authRequired, ctrl.Auth.Me)
			auth.PUT("/change-password", authRequired, ctrl.Auth.ChangePassword)
			auth.PUT("/change-email", authRequired, ctrl.Auth.ChangeEmail)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", ctrl.Settings.Get)
			settings.PUT("", authRequired, ctrl.Settings.Update)
		}

		pricing := api.Group("/pricing")
		{
			pricing.GET("", ctrl.Pricing.GetPricing)
			pricing.POST("/tabs", authRequired, ctrl.Pricing.CreateTab)
			pricing.PUT("/tabs/:id", authRequired, ctrl.Pricing.UpdateTab)
			pricing.DELETE("/tabs/:id", authRequired, ctrl.Pricing.DeleteTab)
			pricing.POST("/plans", authRequired, ctrl.Pricing.CreatePlan)
			pricing.PUT("/plans/:id", authRequired, ctrl.Pricing.UpdatePlan)
			pricing.DELETE("/plans/:id", authRequired, ctrl.Pricing.DeletePlan)
			pricing.DELETE("/features/:id", authRequired, ctrl.Pricing.DeleteFeature)
		}

		faqs := api.Group("/faqs")
		{
			faqs.GET("", ctrl.FAQs.List)
			faqs.GET("/:id", ctrl.FAQs.Get)
			faqs.POST("", authRequired, ctrl.FAQs.Create)
			faqs.PUT("/:id", authRequired, ctrl.FAQs.Update)
			faqs.DELETE("/:id", authRequired, ctrl.FAQs.Delete)
		}

		stats := api.Group("/stats")
		{
			stats.GET("", ctrl.Stats.List)
			stats.POST("", authRequired, ctrl.Stats.Create)
			stats.PUT("/:id", authRequired, ctrl.Stats.Update)
			stats.DELETE("/:id", authRequired, ctrl.Stats.Delete)
		}

		sections := api.Group("/sections")
		{
			sections.GET("", ctrl.Sections.List)
			sections.GET("/:key", ctrl.Sections.Get)
			sections.PUT("/:key", authRequired, ctrl.Sections.Upsert)
			sections.DELETE("/:key", authRequired, ctrl.Sections.Delete)
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", ctrl.Blogs.ListPublished)

			// must come before /:slug
			blogs.GET("/admin/all", authRequired, ctrl.Blogs.ListAll)

			blogs.GET("/:slug", ctrl.Blogs.GetBySlug)
			blogs.POST("", authRequired, ctrl.Blogs.Create)
			blogs.PUT("/:id", authRequired, ctrl.Blogs.Update)
			blogs.DELETE("/:id", authRequired, ctrl.Blogs.Delete)
		}

		blogImages := api.Group("/blog-images")
		{
			blogImages.GET("", ctrl.Blogs.ListImages)
			blogImages.POST("", authRequired, ctrl.Blogs.CreateImage)
			blogImages.DELETE("/:id", authRequired, ctrl.Blogs.DeleteImage)
		}

		sliders := api.Group("/slider-images")
		{
			sliders.GET("", ctrl.Sliders.List)
			sliders.POST("", authRequired, ctrl.Sliders.Create)
			sliders.PUT("/:id", authRequired, ctrl.Sliders.Update)
			sliders.DELETE("/:id", authRequired, ctrl.Sliders.Delete)
		}

		api.POST("/upload/:category", authRequired, ctrl.Uploads.Upload)
	}

	return r
}
