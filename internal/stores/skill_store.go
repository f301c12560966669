package stores

import (
	"context"
	"fmt"

	"github.com/TauHsu/course-booking/internal/models"

	"gorm.io/gorm"
)

type SkillStore interface {
	List(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	FindByName(ctx context.Context, name string) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id string) (int64, error)
}

type GormSkillStore struct{ DB *gorm.DB }

func (s *GormSkillStore) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := s.DB.WithContext(ctx).Select("id", "name").Order("created_at").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

func (s *GormSkillStore) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	var skill models.Skill
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *GormSkillStore) FindByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	if err := s.DB.WithContext(ctx).Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *GormSkillStore) Create(ctx context.Context, skill *models.Skill) error {
	return translate(s.DB.WithContext(ctx).Create(skill).Error)
}

func (s *GormSkillStore) Delete(ctx context.Context, id string) (int64, error) {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Skill{})
	return res.RowsAffected, translate(res.Error)
}
