package services

import (
	"time"

	"studyscape/internal/hours"
	"studyscape/internal/repo"
	"studyscape/pkg/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SpotService handles study spot business logic
type SpotService struct {
	spotRepo *repo.SpotRepository
	location *time.Location
}

// NewSpotService creates a new spot service. The location is the fixed
// service timezone all open-now evaluation is anchored to.
func NewSpotService(spotRepo *repo.SpotRepository, location *time.Location) *SpotService {
	return &SpotService{
		spotRepo: spotRepo,
		location: location,
	}
}

// GetSpotByID gets a spot by ID
func (s *SpotService) GetSpotByID(id uuid.UUID) (*models.Spot, error) {
	return s.spotRepo.GetByID(id)
}

// ListSpots lists spots matching the filter, with pagination
func (s *SpotService) ListSpots(filter models.SpotListFilter, page, perPage int) (*models.PaginationResult[models.Spot], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	spots, total, err := s.spotRepo.List(filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &models.PaginationResult[models.Spot]{
		Data:       spots,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// CreateSpot creates a new spot
func (s *SpotService) CreateSpot(req *models.CreateSpotRequest, createdBy *uuid.UUID) (*models.Spot, error) {
	spot := &models.Spot{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		HasWifi:     req.HasWifi,
		HasPower:    req.HasPower,
		NoiseLevel:  req.NoiseLevel,
		Hours:       req.Hours,
		CreatedBy:   createdBy,
	}
	if spot.NoiseLevel == "" {
		spot.NoiseLevel = "moderate"
	}

	if err := s.spotRepo.Create(spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// UpdateSpot updates an existing spot; nil request fields are left unchanged
func (s *SpotService) UpdateSpot(id uuid.UUID, req *models.UpdateSpotRequest) (*models.Spot, error) {
	spot, err := s.spotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		spot.Name = *req.Name
	}
	if req.Description != nil {
		spot.Description = *req.Description
	}
	if req.Address != nil {
		spot.Address = *req.Address
	}
	if req.Latitude != nil {
		spot.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		spot.Longitude = req.Longitude
	}
	if req.HasWifi != nil {
		spot.HasWifi = *req.HasWifi
	}
	if req.HasPower != nil {
		spot.HasPower = *req.HasPower
	}
	if req.NoiseLevel != nil {
		spot.NoiseLevel = *req.NoiseLevel
	}
	if req.Hours != nil {
		spot.Hours = *req.Hours
	}

	if err := s.spotRepo.Update(spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// DeleteSpot soft deletes a spot
func (s *SpotService) DeleteSpot(id uuid.UUID) error {
	return s.spotRepo.Delete(id)
}

// SetPhotoURL stores an uploaded photo URL on the spot
func (s *SpotService) SetPhotoURL(id uuid.UUID, url string) (*models.Spot, error) {
	spot, err := s.spotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	spot.PhotoURL = url
	if err := s.spotRepo.Update(spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// OpenNowIDs evaluates every spot's weekly hours against the current
// instant in the service timezone and returns the IDs of the spots
// that are open, in stored order.
func (s *SpotService) OpenNowIDs(now time.Time) ([]uuid.UUID, error) {
	spots, err := s.spotRepo.ListWithHours()
	if err != nil {
		return nil, err
	}

	entries := make([]hours.Entry, 0, len(spots))
	for _, spot := range spots {
		entries = append(entries, hours.Entry{ID: spot.ID, Hours: spot.Hours})
	}

	tc := hours.NewTimeContext(now, s.location)
	open := hours.FilterOpen(entries, tc)

	log.Debug().
		Str("day", tc.DayOfWeek).
		Str("time", tc.CurrentTime).
		Int("evaluated", len(entries)).
		Int("open", len(open)).
		Msg("Evaluated open-now status")

	return open, nil
}
