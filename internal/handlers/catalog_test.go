package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/internal/handlers"
	"github.com/TauHsu/course-booking/internal/mocks"
	"github.com/TauHsu/course-booking/internal/models"
	"github.com/TauHsu/course-booking/internal/stores"
)

func TestListSkills(t *testing.T) {
	ctx, w := newContext(http.MethodGet, "/api/skill", "")
	skills := new(mocks.SkillStore)
	skills.On("List", mock.Anything).Return([]models.Skill{{ID: itemID, Name: "Yoga"}}, nil)

	handlers.NewSkillHandler(skills, zap.NewNop()).List(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"`+itemID+`","name":"Yoga"}]`, string(readEnvelope(t, w).Data))
}

func TestCreateSkill(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctx, w := newContext(http.MethodPost, "/api/skill", `{"name":"Yoga"}`)
		skills := new(mocks.SkillStore)
		skills.On("FindByName", mock.Anything, "Yoga").Return(nil, stores.ErrNotFound)
		skills.On("Create", mock.Anything, mock.AnythingOfType("*models.Skill")).Return(nil)

		handlers.NewSkillHandler(skills, zap.NewNop()).Create(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		var data map[string]any
		readData(t, w, &data)
		assert.Equal(t, "Yoga", data["name"])
		skills.AssertExpectations(t)
	})

	t.Run("duplicate", func(t *testing.T) {
		ctx, w := newContext(http.MethodPost, "/api/skill", `{"name":"Yoga"}`)
		skills := new(mocks.SkillStore)
		skills.On("FindByName", mock.Anything, "Yoga").Return(&models.Skill{ID: itemID, Name: "Yoga"}, nil)

		handlers.NewSkillHandler(skills, zap.NewNop()).Create(ctx)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "duplicate data", readEnvelope(t, w).Message)
	})

	t.Run("blank", func(t *testing.T) {
		ctx, w := newContext(http.MethodPost, "/api/skill", `{"name":""}`)
		skills := new(mocks.SkillStore)

		handlers.NewSkillHandler(skills, zap.NewNop()).Create(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteSkill(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		affected   int64
		err        error
		wantStatus int
	}{
		{"deleted", itemID, 1, nil, http.StatusOK},
		{"unknown id", itemID, 0, nil, http.StatusBadRequest},
		{"malformed id", "not-a-uuid", 0, nil, http.StatusBadRequest},
		{"still used", itemID, 0, stores.ErrInUse, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, w := newContext(http.MethodDelete, "/api/skill/"+tt.id, "", "skillId", tt.id)
			skills := new(mocks.SkillStore)
			skills.On("Delete", mock.Anything, itemID).Return(tt.affected, tt.err)

			handlers.NewSkillHandler(skills, zap.NewNop()).Delete(ctx)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestListCreditPackages(t *testing.T) {
	ctx, w := newContext(http.MethodGet, "/api/credit-package", "")
	pkgs := new(mocks.CreditPackageStore)
	pkgs.On("List", mock.Anything).Return([]models.CreditPackage{
		{ID: itemID, Name: "7 classes", CreditAmount: 7, Price: 1400},
	}, nil)

	handlers.NewCreditPackageHandler(pkgs, nil, zap.NewNop()).List(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"id":"`+itemID+`","name":"7 classes","credit_amount":7,"price":1400}]`,
		string(readEnvelope(t, w).Data))
}

func TestCreateCreditPackage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"created", `{"name":"7 classes","credit_amount":7,"price":1400}`, http.StatusOK},
		{"negative credits", `{"name":"7 classes","credit_amount":-7,"price":1400}`, http.StatusBadRequest},
		{"fractional price", `{"name":"7 classes","credit_amount":7,"price":14.5}`, http.StatusBadRequest},
		{"missing price", `{"name":"7 classes","credit_amount":7}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, w := newContext(http.MethodPost, "/api/credit-package", tt.body)
			pkgs := new(mocks.CreditPackageStore)
			pkgs.On("FindByName", mock.Anything, "7 classes").Return(nil, stores.ErrNotFound)
			pkgs.On("Create", mock.Anything, mock.AnythingOfType("*models.CreditPackage")).Return(nil)

			handlers.NewCreditPackageHandler(pkgs, nil, zap.NewNop()).Create(ctx)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateCreditPackageDuplicate(t *testing.T) {
	ctx, w := newContext(http.MethodPost, "/api/credit-package", `{"name":"7 classes","credit_amount":7,"price":1400}`)
	pkgs := new(mocks.CreditPackageStore)
	pkgs.On("FindByName", mock.Anything, "7 classes").Return(nil, stores.ErrNotFound)
	pkgs.On("Create", mock.Anything, mock.Anything).Return(stores.ErrDuplicate)

	handlers.NewCreditPackageHandler(pkgs, nil, zap.NewNop()).Create(ctx)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPurchaseCreditPackage(t *testing.T) {
	t.Run("purchased", func(t *testing.T) {
		ctx, w := newContext(http.MethodPost, "/api/credit-package/"+itemID, "", "creditPackageId", itemID)
		asUser(ctx, userID)

		pkg := &models.CreditPackage{ID: itemID, Name: "7 classes", CreditAmount: 7, Price: 1400}
		pkgs := new(mocks.CreditPackageStore)
		pkgs.On("GetByID", mock.Anything, itemID).Return(pkg, nil)
		purchases := new(mocks.CreditPurchaseStore)
		purchases.On("Create", mock.Anything, userID, pkg).
			Return(&models.CreditPurchase{ID: courseID, UserID: userID, PurchasedCredits: 7}, nil)

		handlers.NewCreditPackageHandler(pkgs, purchases, zap.NewNop()).Purchase(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", string(readEnvelope(t, w).Data))
		purchases.AssertExpectations(t)
	})

	t.Run("unknown package", func(t *testing.T) {
		ctx, w := newContext(http.MethodPost, "/api/credit-package/"+itemID, "", "creditPackageId", itemID)
		asUser(ctx, userID)

		pkgs := new(mocks.CreditPackageStore)
		pkgs.On("GetByID", mock.Anything, itemID).Return(nil, stores.ErrNotFound)
		purchases := new(mocks.CreditPurchaseStore)

		handlers.NewCreditPackageHandler(pkgs, purchases, zap.NewNop()).Purchase(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		purchases.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteCreditPackage(t *testing.T) {
	for _, tc := range []struct {
		affected int64
		want     int
	}{
		{1, http.StatusOK},
		{0, http.StatusBadRequest},
	} {
		ctx, w := newContext(http.MethodDelete, "/api/credit-package/"+itemID, "", "creditPackageId", itemID)
		pkgs := new(mocks.CreditPackageStore)
		pkgs.On("Delete", mock.Anything, itemID).Return(tc.affected, nil)

		handlers.NewCreditPackageHandler(pkgs, nil, zap.NewNop()).Delete(ctx)

		assert.Equal(t, tc.want, w.Code)
	}
}
