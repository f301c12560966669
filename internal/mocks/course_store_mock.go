package mocks

import (
	"context"

	"github.com/TauHsu/course-booking/internal/models"

	"github.com/stretchr/testify/mock"
)

type CourseStore struct{ mock.Mock }

func (m *CourseStore) List(ctx context.Context) ([]models.Course, error) {
	a := m.Called(ctx)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.Course), a.Error(1)
}

func (m *CourseStore) GetByID(ctx context.Context, id string) (*models.Course, error) {
	a := m.Called(ctx, id)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.Course), a.Error(1)
}

func (m *CourseStore) Create(ctx context.Context, course *models.Course) error {
	return m.Called(ctx, course).Error(0)
}

type BookingStore struct{ mock.Mock }

func (m *BookingStore) Book(ctx context.Context, userID, courseID string) (*models.CourseBooking, error) {
	a := m.Called(ctx, userID, courseID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.CourseBooking), a.Error(1)
}

func (m *BookingStore) Cancel(ctx context.Context, userID, courseID string) error {
	return m.Called(ctx, userID, courseID).Error(0)
}

func (m *BookingStore) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	a := m.Called(ctx, userID)
	return a.Get(0).(int64), a.Error(1)
}

func (m *BookingStore) ListActiveByUser(ctx context.Context, userID string) ([]models.CourseBooking, error) {
	a := m.Called(ctx, userID)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.CourseBooking), a.Error(1)
}
