package models

// PaginationResult represents paginated results
type PaginationResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// Swagger-specific types (non-generic to avoid swag parsing issues)

// SwaggerSpot represents a spot for swagger docs (without GORM dependencies)
type SwaggerSpot struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address,omitempty"`
	HasWifi     bool    `json:"has_wifi"`
	HasPower    bool    `json:"has_power"`
	NoiseLevel  string  `json:"noise_level"`
	PhotoURL    string  `json:"photo_url,omitempty"`
	AvgRating   float64 `json:"avg_rating"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// SpotListResponse represents paginated spot results for Swagger docs
type SpotListResponse struct {
	Data       []SwaggerSpot `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
}

// GetAllModels returns all models for GORM AutoMigrate
func GetAllModels() []interface{} {
	return []interface{}{
		&User{},
		&Spot{},
		&Review{},
	}
}
