package app

import (
	"time"

	"studyscape/internal/auth"
	"studyscape/internal/repo"
	"studyscape/internal/services"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB             *gorm.DB
	AuthService    *auth.Service
	UserRepo       *repo.UserRepository
	SpotRepo       *repo.SpotRepository
	ReviewRepo     *repo.ReviewRepository
	SpotService    *services.SpotService
	ReviewService  *services.ReviewService
	StorageService *services.StorageService
}

// NewServices creates a new services container
func NewServices(db *gorm.DB, location *time.Location) *Services {
	// Initialize repositories
	userRepo := repo.NewUserRepository(db)
	spotRepo := repo.NewSpotRepository(db)
	reviewRepo := repo.NewReviewRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	spotService := services.NewSpotService(spotRepo, location)
	reviewService := services.NewReviewService(reviewRepo, spotRepo)

	// Storage is optional: photo upload answers 500 until S3 is configured
	storageService, err := services.NewStorageService()
	if err != nil {
		log.Warn().Err(err).Msg("Storage service not available, photo upload disabled")
	}

	return &Services{
		DB:             db,
		AuthService:    authService,
		UserRepo:       userRepo,
		SpotRepo:       spotRepo,
		ReviewRepo:     reviewRepo,
		SpotService:    spotService,
		ReviewService:  reviewService,
		StorageService: storageService,
	}
}
