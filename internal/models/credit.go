package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditPackage struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CreditAmount int       `gorm:"not null" json:"credit_amount"`
	Price        float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *CreditPackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CreditPurchase snapshots the package's credits and price at purchase time.
type CreditPurchase struct {
	ID               string        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string        `gorm:"type:uuid;not null;index" json:"user_id"`
	CreditPackageID  *string       `gorm:"type:uuid" json:"credit_package_id"`
	CreditPackage    CreditPackage `gorm:"foreignKey:CreditPackageID;constraint:OnDelete:SET NULL" json:"-"`
	PurchasedCredits int           `gorm:"not null" json:"purchased_credits"`
	PricePaid        float64       `gorm:"type:numeric(10,2);not null" json:"price_paid"`
	PurchaseAt       time.Time     `gorm:"not null" json:"purchase_at"`
	CreatedAt        time.Time     `json:"created_at"`
}

func (p *CreditPurchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
