package models

import (
	"github.com/google/uuid"
)

// Review represents a user's review of a study spot
type Review struct {
	BaseModel
	SpotID  uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"spot_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Rating  int       `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Comment string    `gorm:"type:text" json:"comment"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// CreateReviewRequest represents review creation data
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
