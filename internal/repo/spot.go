package repo

import (
	"studyscape/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpotRepository handles study spot data access
type SpotRepository struct {
	db *gorm.DB
}

// NewSpotRepository creates a new spot repository
func NewSpotRepository(db *gorm.DB) *SpotRepository {
	return &SpotRepository{db: db}
}

// GetByID gets a spot by ID
func (r *SpotRepository) GetByID(id uuid.UUID) (*models.Spot, error) {
	var spot models.Spot
	if err := r.db.Where("id = ?", id).First(&spot).Error; err != nil {
		return nil, err
	}
	return &spot, nil
}

// Create creates a new spot
func (r *SpotRepository) Create(spot *models.Spot) error {
	return r.db.Create(spot).Error
}

// Update updates a spot
func (r *SpotRepository) Update(spot *models.Spot) error {
	return r.db.Save(spot).Error
}

// Delete soft deletes a spot
func (r *SpotRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Spot{}).Error
}

// List gets spots matching the filter, with pagination
func (r *SpotRepository) List(filter models.SpotListFilter, limit, offset int) ([]models.Spot, int64, error) {
	query := r.db.Model(&models.Spot{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR address ILIKE ?", like, like, like)
	}
	if filter.Wifi != nil {
		query = query.Where("has_wifi = ?", *filter.Wifi)
	}
	if filter.Power != nil {
		query = query.Where("has_power = ?", *filter.Power)
	}
	if filter.MaxNoise != "" {
		switch filter.MaxNoise {
		case "quiet":
			query = query.Where("noise_level = ?", "quiet")
		case "moderate":
			query = query.Where("noise_level IN ?", []string{"quiet", "moderate"})
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var spots []models.Spot
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&spots).Error; err != nil {
		return nil, 0, err
	}
	return spots, total, nil
}

// ListWithHours gets the id and hours of every spot, for open-now evaluation
func (r *SpotRepository) ListWithHours() ([]models.Spot, error) {
	var spots []models.Spot
	if err := r.db.Select("id", "hours").Order("created_at ASC").Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// ListByIDs gets spots by ID, preserving no particular order
func (r *SpotRepository) ListByIDs(ids []uuid.UUID) ([]models.Spot, error) {
	var spots []models.Spot
	if len(ids) == 0 {
		return spots, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// UpdateRating stores the denormalized review aggregate on the spot
func (r *SpotRepository) UpdateRating(id uuid.UUID, avg float64, count int64) error {
	return r.db.Model(&models.Spot{}).Where("id = ?", id).
		Updates(map[string]interface{}{"avg_rating": avg, "review_count": count}).Error
}
