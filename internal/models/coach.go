package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coach struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"user"`
	ExperienceYears int       `gorm:"not null" json:"experience_years"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	ProfileImageURL string    `gorm:"size:2048" json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c *Coach) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
