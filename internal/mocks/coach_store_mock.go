package mocks

import (
	"context"

	"github.com/TauHsu/course-booking/internal/models"

	"github.com/stretchr/testify/mock"
)

type CoachStore struct{ mock.Mock }

func (m *CoachStore) List(ctx context.Context, limit, offset int) ([]models.Coach, error) {
	a := m.Called(ctx, limit, offset)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.Coach), a.Error(1)
}

func (m *CoachStore) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	a := m.Called(ctx, id)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.Coach), a.Error(1)
}

func (m *CoachStore) Promote(ctx context.Context, coach *models.Coach) error {
	return m.Called(ctx, coach).Error(0)
}
