package stores_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/TauHsu/course-booking/internal/models"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

type fixtures struct {
	t  *testing.T
	db *gorm.DB
	n  int
}

func newFixtures(t *testing.T, db *gorm.DB) *fixtures {
	return &fixtures{t: t, db: db}
}

func (f *fixtures) user(role string) *models.User {
	f.n++
	u := &models.User{
		Name:     fmt.Sprintf("user%d", f.n),
		Email:    fmt.Sprintf("user%d@example.com", f.n),
		Role:     role,
		Password: "hash",
	}
	require.NoError(f.t, f.db.Create(u).Error)
	return u
}

func (f *fixtures) skill(name string) *models.Skill {
	s := &models.Skill{Name: name}
	require.NoError(f.t, f.db.Create(s).Error)
	return s
}

func (f *fixtures) course(coach *models.User, skill *models.Skill, maxParticipants int) *models.Course {
	f.n++
	start := time.Now().Add(24 * time.Hour)
	c := &models.Course{
		UserID:          coach.ID,
		SkillID:         skill.ID,
		Name:            fmt.Sprintf("course%d", f.n),
		Description:     "desc",
		StartAt:         start,
		EndAt:           start.Add(time.Hour),
		MaxParticipants: maxParticipants,
	}
	require.NoError(f.t, f.db.Omit("User", "Skill").Create(c).Error)
	return c
}

func (f *fixtures) credits(u *models.User, amount int) {
	f.n++
	pkg := &models.CreditPackage{
		Name:         fmt.Sprintf("package%d", f.n),
		CreditAmount: amount,
		Price:        float64(amount) * 100,
	}
	require.NoError(f.t, f.db.Create(pkg).Error)

	purchase := &models.CreditPurchase{
		UserID:           u.ID,
		CreditPackageID:  &pkg.ID,
		PurchasedCredits: amount,
		PricePaid:        pkg.Price,
		PurchaseAt:       time.Now(),
	}
	require.NoError(f.t, f.db.Omit("CreditPackage").Create(purchase).Error)
}

var ctx = context.Background()
