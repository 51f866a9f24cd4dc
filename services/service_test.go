package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"iptv-backend/models"
)

// openTestDB returns a fresh in-memory database with foreign keys
// enforced, migrated to the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// a second pooled connection would see a different in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Admin{},
		&models.PasswordResetToken{},
		&models.Setting{},
		&models.PricingTab{},
		&models.Plan{},
		&models.PlanFeature{},
		&models.FAQ{},
		&models.Blog{},
		&models.BlogImage{},
		&models.SliderImage{},
		&models.Stat{},
		&models.Section{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }
func uintPtr(v uint) *uint    { return &v }
