package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"iptv-backend/config"
	"iptv-backend/controllers"
	"iptv-backend/routes"
	"iptv-backend/services"
)

const uploadDir = "./uploads"

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Required signing secret (fatal if missing)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot sign session tokens.")
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	// Connect database, migrate, seed
	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	tokenService := services.NewTokenService(jwtSecret, 24*time.Hour)
	authService := services.NewAuthService(db)
	resetService := services.NewResetService(db, frontendURL, nil)
	settingsService := services.NewSettingsService(db)
	pricingService := services.NewPricingService(db)
	faqService := services.NewFAQService(db)
	statService := services.NewStatService(db)
	sectionService := services.NewSectionService(db)
	blogService := services.NewBlogService(db)
	uploadService := services.NewUploadService(uploadDir)
	sliderService := services.NewSliderService(db, uploadDir)

	// Initialize controllers
	ctrl := routes.Controllers{
		Auth:     controllers.NewAuthController(authService, tokenService, resetService),
		Settings: controllers.NewSettingsController(settingsService),
		Pricing:  controllers.NewPricingController(pricingService),
		FAQs:     controllers.NewFAQController(faqService),
		Stats:    controllers.NewStatController(statService),
		Sections: controllers.NewSectionController(sectionService),
		Blogs:    controllers.NewBlogController(blogService),
		Sliders:  controllers.NewSliderController(sliderService, uploadService),
		Uploads:  controllers.NewUploadController(uploadService),
	}

	// Build router
	router := routes.SetupRouter(db, tokenService, ctrl, uploadDir)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
