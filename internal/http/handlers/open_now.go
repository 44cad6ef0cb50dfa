package handlers

import (
	"net/http"
	"time"

	"studyscape/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// openNowLister resolves the IDs of the spots open at a given instant.
type openNowLister interface {
	OpenNowIDs(now time.Time) ([]uuid.UUID, error)
}

type OpenNowHandler struct {
	spots openNowLister
}

func NewOpenNowHandler(spots openNowLister) *OpenNowHandler {
	return &OpenNowHandler{
		spots: spots,
	}
}

// List godoc
// @Summary List spots open right now
// @Description Get the IDs of study spots whose opening hours include the current instant in the service timezone
// @Tags spots
// @Produce json
// @Success 200 {object} models.OpenNowResponse
// @Failure 500 {object} map[string]string
// @Router /spots/open-now [get]
func (h *OpenNowHandler) List(c echo.Context) error {
	ids, err := h.spots.OpenNowIDs(time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, models.OpenNowResponse{OpenSpotIDs: ids})
}
