package repo

import (
	"studyscape/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository handles review data access
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// GetByID gets a review by ID
func (r *ReviewRepository) GetByID(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Create creates a new review
func (r *ReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Delete soft deletes a review
func (r *ReviewRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Review{}).Error
}

// ListBySpot gets all reviews for a spot, newest first
func (r *ReviewRepository) ListBySpot(spotID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").Where("spot_id = ?", spotID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetBySpotAndUser gets a user's review of a spot, if any
func (r *ReviewRepository) GetBySpotAndUser(spotID, userID uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("spot_id = ? AND user_id = ?", spotID, userID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Aggregate computes the average rating and review count for a spot
func (r *ReviewRepository) Aggregate(spotID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("spot_id = ?", spotID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
