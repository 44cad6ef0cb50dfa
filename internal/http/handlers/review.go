package handlers

import (
	"net/http"

	"studyscape/internal/services"
	"studyscape/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListBySpot godoc
// @Summary List reviews for a spot
// @Description Get all reviews for a study spot, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {array} models.Review
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spots/{id}/reviews [get]
func (h *ReviewHandler) ListBySpot(c echo.Context) error {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid spot ID"})
	}

	reviews, err := h.reviewService.ListReviews(spotID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch reviews"})
	}

	return c.JSON(http.StatusOK, reviews)
}

// Create godoc
// @Summary Create review
// @Description Review a study spot (one review per user per spot)
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Param review body models.CreateReviewRequest true "Review data"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]string
// @Router /spots/{id}/reviews [post]
// @Security BearerAuth
func (h *ReviewHandler) Create(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid spot ID"})
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	review, err := h.reviewService.CreateReview(spotID, userID, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, review)
}

// Delete godoc
// @Summary Delete review
// @Description Delete a review (author or admin only)
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reviews/{id} [delete]
// @Security BearerAuth
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)
	role := c.Get("user_role").(string)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid review ID"})
	}

	if err := h.reviewService.DeleteReview(id, userID, role); err != nil {
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}
