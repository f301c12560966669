package stores

import (
	"context"
	"fmt"

	"github.com/TauHsu/course-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseStore interface {
	// List returns every course with its coach's and skill's names loaded.
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
}

type GormCourseStore struct{ DB *gorm.DB }

func withSkillName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func (s *GormCourseStore) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.WithContext(ctx).
		Preload("User", withUserName).
		Preload("Skill", withSkillName).
		Order("start_at").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *GormCourseStore) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var c models.Course
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormCourseStore) Create(ctx context.Context, course *models.Course) error {
	return translate(s.DB.WithContext(ctx).Omit(clause.Associations).Create(course).Error)
}
