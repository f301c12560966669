package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course is a class taught by a coach. UserID points at the coach's user row.
type Course struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"-"`
	SkillID         string    `gorm:"type:uuid;not null;index" json:"skill_id"`
	Skill           Skill     `gorm:"foreignKey:SkillID" json:"-"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	StartAt         time.Time `gorm:"not null" json:"start_at"`
	EndAt           time.Time `gorm:"not null" json:"end_at"`
	MaxParticipants int       `gorm:"not null" json:"max_participants"`
	MeetingURL      string    `gorm:"size:2048" json:"meeting_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
