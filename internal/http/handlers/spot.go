package handlers

import (
	"net/http"
	"strconv"

	"studyscape/internal/services"
	"studyscape/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SpotHandler struct {
	spotService    *services.SpotService
	storageService *services.StorageService
}

func NewSpotHandler(spotService *services.SpotService, storageService *services.StorageService) *SpotHandler {
	return &SpotHandler{
		spotService:    spotService,
		storageService: storageService,
	}
}

// List godoc
// @Summary List study spots
// @Description Get study spots with optional filters and pagination
// @Tags spots
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search in name, description and address"
// @Param wifi query bool false "Require wifi"
// @Param power query bool false "Require power outlets"
// @Param max_noise query string false "Maximum noise level (quiet or moderate)"
// @Success 200 {object} models.SpotListResponse
// @Failure 500 {object} map[string]string
// @Router /spots [get]
func (h *SpotHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	filter := models.SpotListFilter{
		Search:   c.QueryParam("search"),
		MaxNoise: c.QueryParam("max_noise"),
	}
	if v := c.QueryParam("wifi"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			filter.Wifi = &b
		}
	}
	if v := c.QueryParam("power"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			filter.Power = &b
		}
	}

	result, err := h.spotService.ListSpots(filter, page, perPage)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch spots"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetByID godoc
// @Summary Get spot by ID
// @Description Get a specific study spot by ID
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} models.SwaggerSpot
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spots/{id} [get]
func (h *SpotHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid spot ID"})
	}

	spot, err := h.spotService.GetSpotByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "spot not found"})
	}

	return c.JSON(http.StatusOK, spot)
}

// Create godoc
// @Summary Create spot
// @Description Create a new study spot
// @Tags spots
// @Accept json
// @Produce json
// @Param spot body models.CreateSpotRequest true "Spot data"
// @Success 201 {object} models.SwaggerSpot
// @Failure 400 {object} map[string]string
// @Router /spots [post]
// @Security BearerAuth
func (h *SpotHandler) Create(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	var req models.CreateSpotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	spot, err := h.spotService.CreateSpot(&req, &userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, spot)
}

// Update godoc
// @Summary Update spot
// @Description Update an existing study spot
// @Tags spots
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Param spot body models.UpdateSpotRequest true "Spot data"
// @Success 200 {object} models.SwaggerSpot
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spots/{id} [put]
// @Security BearerAuth
func (h *SpotHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid spot ID"})
	}

	var req models.UpdateSpotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	spot, err := h.spotService.UpdateSpot(id, &req)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "spot not found"})
	}

	return c.JSON(http.StatusOK, spot)
}

// Delete godoc
// @Summary Delete spot
// @Description Delete a study spot
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spots/{id} [delete]
// @Security BearerAuth
func (h *SpotHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid spot ID"})
	}

	if err := h.spotService.DeleteSpot(id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete spot"})
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadPhoto godoc
// @Summary Upload spot photo
// @Description Upload a photo for a study spot
// @Tags spots
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Spot ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} models.SwaggerSpot
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spots/{id}/photo [post]
// @Security BearerAuth
func (h *SpotHandler) UploadPhoto(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid spot ID"})
	}

	if h.storageService == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "storage service not configured"})
	}

	if _, err := h.spotService.GetSpotByID(id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "spot not found"})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "photo file is required"})
	}

	url, err := h.storageService.UploadSpotPhoto(fileHeader, id.String())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to upload photo"})
	}

	spot, err := h.spotService.SetPhotoURL(id, url)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save photo URL"})
	}

	return c.JSON(http.StatusOK, spot)
}
