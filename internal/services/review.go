package services

import (
	"errors"

	"studyscape/internal/repo"
	"studyscape/pkg/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReviewService handles review business logic
type ReviewService struct {
	reviewRepo *repo.ReviewRepository
	spotRepo   *repo.SpotRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo *repo.ReviewRepository, spotRepo *repo.SpotRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		spotRepo:   spotRepo,
	}
}

// ListReviews gets all reviews for a spot, newest first
func (s *ReviewService) ListReviews(spotID uuid.UUID) ([]models.Review, error) {
	return s.reviewRepo.ListBySpot(spotID)
}

// CreateReview creates a review for a spot and refreshes its rating aggregate
func (s *ReviewService) CreateReview(spotID, userID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.spotRepo.GetByID(spotID); err != nil {
		return nil, errors.New("spot not found")
	}

	existing, err := s.reviewRepo.GetBySpotAndUser(spotID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("you have already reviewed this spot")
	}

	review := &models.Review{
		SpotID:  spotID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	s.refreshRating(spotID)
	return review, nil
}

// DeleteReview deletes a review if the caller is the author or an admin
func (s *ReviewService) DeleteReview(id, userID uuid.UUID, role string) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return errors.New("review not found")
	}

	if review.UserID != userID && role != "admin" {
		return errors.New("not allowed to delete this review")
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		return err
	}

	s.refreshRating(review.SpotID)
	return nil
}

// refreshRating recomputes the denormalized rating aggregate on the spot.
// Failures are logged, not surfaced: the review write already succeeded.
func (s *ReviewService) refreshRating(spotID uuid.UUID) {
	avg, count, err := s.reviewRepo.Aggregate(spotID)
	if err != nil {
		log.Warn().Err(err).Str("spot_id", spotID.String()).Msg("Failed to aggregate reviews")
		return
	}
	if err := s.spotRepo.UpdateRating(spotID, avg, count); err != nil {
		log.Warn().Err(err).Str("spot_id", spotID.String()).Msg("Failed to update spot rating")
	}
}
