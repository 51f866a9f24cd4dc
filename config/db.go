package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"iptv-backend/models"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "iptv_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL pool, migrates the schema and runs the
// idempotent seed. The returned handle is injected into services; nothing
// here is a package-level singleton.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate in parent-before-child order so FK constraints
// resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}

// SeedDatabase creates the default admin, the singleton settings row and
// the initial content rows. Safe to run on every start.
func SeedDatabase(db *gorm.DB) error {
	// ---------------- Admin ----------------
	var adminCount int64
	db.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		email := envOrDefault("ADMIN_EMAIL", "admin@iptv.local")
		password := envOrDefault("ADMIN_PASSWORD", "admin123")

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default admin password: %w", err)
		}
		admin := models.Admin{Email: email, Password: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("create default admin: %w", err)
		}
		log.Println("Default admin seeded")
	}

	// ---------------- Settings singleton ----------------
	var settingCount int64
	db.Model(&models.Setting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.Setting{
			ID:          1,
			SiteName:    "IPTV Streaming",
			Tagline:     "Premium IPTV subscriptions",
			HeroHeading: "Watch everything, everywhere",
			HeroCtaText: "View pricing",
			HeroCtaLink: "/pricing",
		}
		if err := db.Create(&setting).Error; err != nil {
			return fmt.Errorf("create settings row: %w", err)
		}
		log.Println("Settings seeded")
	}

	// ---------------- Pricing tabs ----------------
	var tabCount int64
	db.Model(&models.PricingTab{}).Count(&tabCount)
	if tabCount == 0 {
		tabs := []models.PricingTab{
			{Name: "1 Device", DisplayOrder: 1},
			{Name: "2 Devices", DisplayOrder: 2},
			{Name: "3 Devices", DisplayOrder: 3},
		}
		if err := db.Create(&tabs).Error; err != nil {
			return fmt.Errorf("seed pricing tabs: %w", err)
		}
		log.Println("Pricing tabs seeded")
	}

	// ---------------- Sections ----------------
	sectionKeys := []models.Section{
		{SectionKey: "pricing", Heading: "Choose your plan"},
		{SectionKey: "faq", Heading: "Frequently asked questions"},
		{SectionKey: "blog", Heading: "Latest from the blog"},
		{SectionKey: "channels", Heading: "Live channels"},
		{SectionKey: "movies", Heading: "Movies on demand"},
	}
	for _, section := range sectionKeys {
		var existing models.Section
		err := db.Where("section_key = ?", section.SectionKey).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check section %s: %w", section.SectionKey, err)
		}
		if err := db.Create(&section).Error; err != nil {
			return fmt.Errorf("seed section %s: %w", section.SectionKey, err)
		}
	}

	// ---------------- Stats ----------------
	var statCount int64
	db.Model(&models.Stat{}).Count(&statCount)
	if statCount == 0 {
		stats := []models.Stat{
			{StatKey: "channels", StatValue: "20000+", StatLabel: "Live channels", DisplayOrder: 1},
			{StatKey: "movies", StatValue: "80000+", StatLabel: "Movies & series", DisplayOrder: 2},
			{StatKey: "uptime", StatValue: "99.9%", StatLabel: "Uptime", DisplayOrder: 3},
			{StatKey: "support", StatValue: "24/7", StatLabel: "Support", DisplayOrder: 4},
		}
		if err := db.Create(&stats).Error; err != nil {
			return fmt.Errorf("seed stats: %w", err)
		}
		log.Println("Stats seeded")
	}

	return nil
}
