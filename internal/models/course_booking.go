package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseBooking is active while CancelledAt is nil.
type CourseBooking struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string     `gorm:"type:uuid;not null;uniqueIndex:idx_course_bookings_active,where:cancelled_at IS NULL" json:"user_id"`
	CourseID    string     `gorm:"type:uuid;not null;index;uniqueIndex:idx_course_bookings_active,where:cancelled_at IS NULL" json:"course_id"`
	Course      Course     `gorm:"foreignKey:CourseID" json:"-"`
	BookingAt   time.Time  `gorm:"not null" json:"booking_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (b *CourseBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.BookingAt.IsZero() {
		b.BookingAt = time.Now()
	}
	return nil
}

// All lists every model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Coach{},
		&Skill{},
		&Course{},
		&CreditPackage{},
		&CreditPurchase{},
		&CourseBooking{},
	}
}
