package stores

import (
	"context"

	"github.com/TauHsu/course-booking/internal/models"

	"gorm.io/gorm"
)

// UserStore abstracts user persistence.
type UserStore interface {
	// FindByEmail returns the user including its password hash, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID never loads the password hash.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// CreateUser persists a new user; ErrDuplicate if the email is taken.
	CreateUser(ctx context.Context, u *models.User) error
	// UpdateName renames the user only if its name is still oldName.
	UpdateName(ctx context.Context, id, oldName, newName string) (int64, error)
}

var publicUserColumns = []string{"id", "name", "email", "role", "created_at", "updated_at"}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Select(publicUserColumns).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) CreateUser(ctx context.Context, u *models.User) error {
	return translate(s.DB.WithContext(ctx).Create(u).Error)
}

func (s *GormUserStore) UpdateName(ctx context.Context, id, oldName, newName string) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND name = ?", id, oldName).
		Update("name", newName)
	return res.RowsAffected, res.Error
}
