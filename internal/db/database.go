package db

import (
	"fmt"
	"os"

	"studyscape/pkg/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"),
	)

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate runs database migrations using GORM
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running GORM AutoMigrate...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Warn().Err(err).Msg("Could not create uuid-ossp extension")
	}

	if err := db.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	if err := createCustomIndexes(db); err != nil {
		log.Warn().Err(err).Msg("Failed to create some custom indexes")
	}

	log.Info().Msg("GORM AutoMigrate completed successfully")
	return nil
}

// createCustomIndexes creates any custom indexes that GORM might not handle
func createCustomIndexes(db *gorm.DB) error {
	indexes := []string{
		// One review per user per spot (among live rows)
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_reviews_spot_user ON reviews(spot_id, user_id) WHERE deleted_at IS NULL`,

		// Full text search index for spots
		`CREATE INDEX IF NOT EXISTS idx_spots_search ON spots USING gin(to_tsvector('english', coalesce(name, '') || ' ' || coalesce(description, '') || ' ' || coalesce(address, '')))`,
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			log.Warn().Err(err).Str("index", idx).Msg("Failed to create index")
		}
	}

	return nil
}

// SeedInitialData creates initial system data
func SeedInitialData(db *gorm.DB) error {
	log.Info().Msg("Seeding initial data...")

	var userCount int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	if userCount == 0 {
		adminUser := models.User{
			Email:    "admin@studyscape.app",
			Password: "$2a$10$ihq36CvkxLkl2FlsN1xI7.iRADfxaBLWHbNzdOCGzJYY/sqsCP1I2", // admin123
			Name:     "StudyScape Admin",
			Role:     "admin",
			IsActive: true,
		}

		if err := db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Info().Msg("Admin user created successfully")
	}

	if err := seedSpots(db); err != nil {
		return err
	}

	return nil
}

// seedSpots inserts a starter set of study spots if the table is empty
func seedSpots(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Spot{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check spots count: %w", err)
	}
	if count > 0 {
		return nil
	}

	weekdays := func(open, close string) models.WeeklyHours {
		h := models.WeeklyHours{}
		for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
			h[d] = &models.DaySchedule{Open: open, Close: close}
		}
		return h
	}

	libraryHours := weekdays("08:00", "22:00")
	libraryHours["saturday"] = &models.DaySchedule{Open: "10:00", Close: "17:00"}
	libraryHours["sunday"] = &models.DaySchedule{Open: "10:00", Close: "17:00"}

	cafeHours := weekdays("07:00", "16:00")
	cafeHours["saturday"] = &models.DaySchedule{Open: "08:00", Close: "14:00"}
	cafeHours["sunday"] = &models.DaySchedule{Open: "closed", Close: "closed"}

	// Overnight study space: open into the small hours of the next day
	lateHours := models.WeeklyHours{}
	for _, d := range []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		lateHours[d] = &models.DaySchedule{Open: "18:00", Close: "02:00"}
	}

	lat := func(v float64) *float64 { return &v }

	spots := []models.Spot{
		{
			Name:        "State Library Reading Room",
			Description: "Quiet heritage reading room with large desks and natural light.",
			Address:     "328 Swanston St, Melbourne VIC",
			Latitude:    lat(-37.8098),
			Longitude:   lat(144.9652),
			HasWifi:     true,
			HasPower:    true,
			NoiseLevel:  "quiet",
			Hours:       libraryHours,
		},
		{
			Name:        "Little Bean Espresso",
			Description: "Laneway cafe with window benches, good for morning sessions.",
			Address:     "15 Degraves St, Melbourne VIC",
			Latitude:    lat(-37.8177),
			Longitude:   lat(144.9655),
			HasWifi:     true,
			HasPower:    false,
			NoiseLevel:  "lively",
			Hours:       cafeHours,
		},
		{
			Name:        "Night Owl Study Lounge",
			Description: "24-hour-style lounge open late into the night, card access after 22:00.",
			Address:     "700 Swanston St, Carlton VIC",
			Latitude:    lat(-37.7996),
			Longitude:   lat(144.9634),
			HasWifi:     true,
			HasPower:    true,
			NoiseLevel:  "moderate",
			Hours:       lateHours,
		},
	}

	for i := range spots {
		if err := db.Create(&spots[i]).Error; err != nil {
			return fmt.Errorf("failed to seed spot %q: %w", spots[i].Name, err)
		}
	}

	log.Info().Int("count", len(spots)).Msg("Seeded study spots")
	return nil
}

// RunMigrations is the main migration function called from main.go
func RunMigrations(db *gorm.DB) error {
	log.Info().Msg("Starting database migrations...")

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	if err := SeedInitialData(db); err != nil {
		return fmt.Errorf("initial data seeding failed: %w", err)
	}

	log.Info().Msg("All migrations completed successfully")
	return nil
}
