package models

import (
	"github.com/google/uuid"
)

// Spot represents a study spot
type Spot struct {
	BaseModel
	Name        string      `gorm:"not null" json:"name" validate:"required"`
	Description string      `gorm:"type:text" json:"description"`
	Address     string      `json:"address"`
	Latitude    *float64    `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude   *float64    `gorm:"type:decimal(11,8)" json:"longitude"`
	HasWifi     bool        `gorm:"default:false" json:"has_wifi"`
	HasPower    bool        `gorm:"default:false" json:"has_power"`
	NoiseLevel  string      `gorm:"default:'moderate'" json:"noise_level"`
	PhotoURL    string      `json:"photo_url"`
	Hours       WeeklyHours `gorm:"type:jsonb" json:"hours"`
	AvgRating   float64     `gorm:"default:0" json:"avg_rating"`
	ReviewCount int64       `gorm:"default:0" json:"review_count"`
	CreatedBy   *uuid.UUID  `gorm:"type:uuid;index" json:"created_by,omitempty"`
}

// CreateSpotRequest represents spot creation data
type CreateSpotRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Latitude    *float64    `json:"latitude"`
	Longitude   *float64    `json:"longitude"`
	HasWifi     bool        `json:"has_wifi"`
	HasPower    bool        `json:"has_power"`
	NoiseLevel  string      `json:"noise_level" validate:"omitempty,oneof=quiet moderate lively"`
	Hours       WeeklyHours `json:"hours"`
}

// UpdateSpotRequest represents spot update data (nil fields are left unchanged)
type UpdateSpotRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Address     *string      `json:"address"`
	Latitude    *float64     `json:"latitude"`
	Longitude   *float64     `json:"longitude"`
	HasWifi     *bool        `json:"has_wifi"`
	HasPower    *bool        `json:"has_power"`
	NoiseLevel  *string      `json:"noise_level" validate:"omitempty,oneof=quiet moderate lively"`
	Hours       *WeeklyHours `json:"hours"`
}

// SpotListFilter holds the optional list filters parsed from the query string
type SpotListFilter struct {
	Search   string
	Wifi     *bool
	Power    *bool
	MaxNoise string
}

// OpenNowResponse is the payload of GET /spots/open-now
type OpenNowResponse struct {
	OpenSpotIDs []uuid.UUID `json:"openSpotIds"`
}
