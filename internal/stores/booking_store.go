package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TauHsu/course-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingStore interface {
	// Book runs the eligibility check and inserts an active booking.
	// It returns ErrNotFound, ErrNoCredits, ErrCourseFull or ErrAlreadyBooked
	// when the user may not book the course.
	Book(ctx context.Context, userID, courseID string) (*models.CourseBooking, error)
	// Cancel stamps the user's active booking on the course as cancelled.
	Cancel(ctx context.Context, userID, courseID string) error
	CountActiveByUser(ctx context.Context, userID string) (int64, error)
	ListActiveByUser(ctx context.Context, userID string) ([]models.CourseBooking, error)
}

type GormBookingStore struct{ DB *gorm.DB }

func activeBookings(db *gorm.DB) *gorm.DB {
	return db.Model(&models.CourseBooking{}).Where("cancelled_at IS NULL")
}

// Book locks the user row and then the course row for the duration of the
// transaction, so two bookings by the same user or for the same course are
// checked one after the other.
func (s *GormBookingStore) Book(ctx context.Context, userID, courseID string) (*models.CourseBooking, error) {
	var booking models.CourseBooking

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", userID).
			First(&u).Error; err != nil {
			return err
		}

		var course models.Course
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", courseID).
			First(&course).Error; err != nil {
			return err
		}

		total, err := sumPurchasedCredits(tx, userID)
		if err != nil {
			return err
		}

		// Every active booking spends one credit, whatever the course.
		var used int64
		if err := activeBookings(tx).Where("user_id = ?", userID).Count(&used).Error; err != nil {
			return fmt.Errorf("count user bookings: %w", err)
		}
		if used >= total {
			return ErrNoCredits
		}

		var participants int64
		if err := activeBookings(tx).Where("course_id = ?", courseID).Count(&participants).Error; err != nil {
			return fmt.Errorf("count course bookings: %w", err)
		}
		if participants >= int64(course.MaxParticipants) {
			return ErrCourseFull
		}

		var existing int64
		if err := activeBookings(tx).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("count existing booking: %w", err)
		}
		if existing > 0 {
			return ErrAlreadyBooked
		}

		booking = models.CourseBooking{
			UserID:    userID,
			CourseID:  courseID,
			BookingAt: time.Now(),
		}
		if err := tx.Omit(clause.Associations).Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyBooked
			}
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (s *GormBookingStore) Cancel(ctx context.Context, userID, courseID string) error {
	db := s.DB.WithContext(ctx)

	var booking models.CourseBooking
	if err := activeBookings(db).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&booking).Error; err != nil {
		return err
	}

	res := activeBookings(db).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Update("cancelled_at", time.Now())
	if res.Error != nil {
		return fmt.Errorf("cancel booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCancelFailed
	}
	return nil
}

func (s *GormBookingStore) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	if err := activeBookings(s.DB.WithContext(ctx)).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count active bookings: %w", err)
	}
	return n, nil
}

func (s *GormBookingStore) ListActiveByUser(ctx context.Context, userID string) ([]models.CourseBooking, error) {
	var bookings []models.CourseBooking
	err := activeBookings(s.DB.WithContext(ctx)).
		Preload("Course").
		Preload("Course.User", withUserName).
		Preload("Course.Skill", withSkillName).
		Where("user_id = ?", userID).
		Order("booking_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}
	return bookings, nil
}
