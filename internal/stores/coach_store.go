package stores

import (
	"context"
	"fmt"

	"github.com/TauHsu/course-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CoachStore interface {
	// List returns coaches newest first; limit 0 means no limit.
	List(ctx context.Context, limit, offset int) ([]models.Coach, error)
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	// Promote gives coach.UserID the COACH role and stores the profile.
	Promote(ctx context.Context, coach *models.Coach) error
}

type GormCoachStore struct{ DB *gorm.DB }

func withUserName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func (s *GormCoachStore) List(ctx context.Context, limit, offset int) ([]models.Coach, error) {
	q := s.DB.WithContext(ctx).Preload("User", withUserName).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var coaches []models.Coach
	if err := q.Find(&coaches).Error; err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	return coaches, nil
}

func (s *GormCoachStore) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	var c models.Coach
	if err := s.DB.WithContext(ctx).Preload("User", withUserName).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormCoachStore) Promote(ctx context.Context, coach *models.Coach) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select(publicUserColumns).
			Where("id = ?", coach.UserID).
			First(&u).Error; err != nil {
			return err
		}
		if u.Role == models.RoleCoach {
			return ErrAlreadyCoach
		}

		if err := tx.Model(&u).Update("role", models.RoleCoach).Error; err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		u.Role = models.RoleCoach
		if err := tx.Omit(clause.Associations).Create(coach).Error; err != nil {
			return translate(err)
		}

		coach.User = u
		return nil
	})
}
