package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/TauHsu/course-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditPackageStore interface {
	List(ctx context.Context) ([]models.CreditPackage, error)
	GetByID(ctx context.Context, id string) (*models.CreditPackage, error)
	FindByName(ctx context.Context, name string) (*models.CreditPackage, error)
	Create(ctx context.Context, pkg *models.CreditPackage) error
	Delete(ctx context.Context, id string) (int64, error)
}

type CreditPurchaseStore interface {
	// Create records a purchase of pkg by userID at the package's current
	// credits and price.
	Create(ctx context.Context, userID string, pkg *models.CreditPackage) (*models.CreditPurchase, error)
	SumPurchasedCredits(ctx context.Context, userID string) (int64, error)
}

type GormCreditPackageStore struct{ DB *gorm.DB }

func (s *GormCreditPackageStore) List(ctx context.Context) ([]models.CreditPackage, error) {
	var pkgs []models.CreditPackage
	err := s.DB.WithContext(ctx).
		Select("id", "name", "credit_amount", "price").
		Order("created_at").
		Find(&pkgs).Error
	if err != nil {
		return nil, fmt.Errorf("list credit packages: %w", err)
	}
	return pkgs, nil
}

func (s *GormCreditPackageStore) GetByID(ctx context.Context, id string) (*models.CreditPackage, error) {
	var pkg models.CreditPackage
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *GormCreditPackageStore) FindByName(ctx context.Context, name string) (*models.CreditPackage, error) {
	var pkg models.CreditPackage
	if err := s.DB.WithContext(ctx).Where("name = ?", name).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *GormCreditPackageStore) Create(ctx context.Context, pkg *models.CreditPackage) error {
	return translate(s.DB.WithContext(ctx).Create(pkg).Error)
}

func (s *GormCreditPackageStore) Delete(ctx context.Context, id string) (int64, error) {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.CreditPackage{})
	return res.RowsAffected, translate(res.Error)
}

type GormCreditPurchaseStore struct{ DB *gorm.DB }

func (s *GormCreditPurchaseStore) Create(ctx context.Context, userID string, pkg *models.CreditPackage) (*models.CreditPurchase, error) {
	purchase := &models.CreditPurchase{
		UserID:           userID,
		CreditPackageID:  &pkg.ID,
		PurchasedCredits: pkg.CreditAmount,
		PricePaid:        pkg.Price,
		PurchaseAt:       time.Now(),
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(purchase).Error; err != nil {
		return nil, fmt.Errorf("create credit purchase: %w", translate(err))
	}
	return purchase, nil
}

func (s *GormCreditPurchaseStore) SumPurchasedCredits(ctx context.Context, userID string) (int64, error) {
	return sumPurchasedCredits(s.DB.WithContext(ctx), userID)
}

func sumPurchasedCredits(db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.Model(&models.CreditPurchase{}).
		Select("COALESCE(SUM(purchased_credits), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum purchased credits: %w", err)
	}
	return total, nil
}
