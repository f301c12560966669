package mocks

import (
	"context"

	"github.com/TauHsu/course-booking/internal/models"

	"github.com/stretchr/testify/mock"
)

type SkillStore struct{ mock.Mock }

func (m *SkillStore) List(ctx context.Context) ([]models.Skill, error) {
	a := m.Called(ctx)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.Skill), a.Error(1)
}

func (m *SkillStore) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	a := m.Called(ctx, id)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.Skill), a.Error(1)
}

func (m *SkillStore) FindByName(ctx context.Context, name string) (*models.Skill, error) {
	a := m.Called(ctx, name)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.Skill), a.Error(1)
}

func (m *SkillStore) Create(ctx context.Context, skill *models.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *SkillStore) Delete(ctx context.Context, id string) (int64, error) {
	a := m.Called(ctx, id)
	return a.Get(0).(int64), a.Error(1)
}

type CreditPackageStore struct{ mock.Mock }

func (m *CreditPackageStore) List(ctx context.Context) ([]models.CreditPackage, error) {
	a := m.Called(ctx)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).([]models.CreditPackage), a.Error(1)
}

func (m *CreditPackageStore) GetByID(ctx context.Context, id string) (*models.CreditPackage, error) {
	a := m.Called(ctx, id)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.CreditPackage), a.Error(1)
}

func (m *CreditPackageStore) FindByName(ctx context.Context, name string) (*models.CreditPackage, error) {
	a := m.Called(ctx, name)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.CreditPackage), a.Error(1)
}

func (m *CreditPackageStore) Create(ctx context.Context, pkg *models.CreditPackage) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *CreditPackageStore) Delete(ctx context.Context, id string) (int64, error) {
	a := m.Called(ctx, id)
	return a.Get(0).(int64), a.Error(1)
}

type CreditPurchaseStore struct{ mock.Mock }

func (m *CreditPurchaseStore) Create(ctx context.Context, userID string, pkg *models.CreditPackage) (*models.CreditPurchase, error) {
	a := m.Called(ctx, userID, pkg)
	if a.Get(0) == nil {
		return nil, a.Error(1)
	}
	return a.Get(0).(*models.CreditPurchase), a.Error(1)
}

func (m *CreditPurchaseStore) SumPurchasedCredits(ctx context.Context, userID string) (int64, error) {
	a := m.Called(ctx, userID)
	return a.Get(0).(int64), a.Error(1)
}
