package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/internal/middleware"
	"github.com/TauHsu/course-booking/internal/models"
	"github.com/TauHsu/course-booking/internal/stores"
	"github.com/TauHsu/course-booking/internal/validate"
)

type CreditPackageHandler struct {
	PackageStore  stores.CreditPackageStore
	PurchaseStore stores.CreditPurchaseStore
	Log           *zap.Logger
}

func NewCreditPackageHandler(
	packageStore stores.CreditPackageStore,
	purchaseStore stores.CreditPurchaseStore,
	log *zap.Logger,
) *CreditPackageHandler {
	return &CreditPackageHandler{
		PackageStore:  packageStore,
		PurchaseStore: purchaseStore,
		Log:           log.Named("credit_packages"),
	}
}

type CreatePackageRequest struct {
	Name         *string  `json:"name"          binding:"required"`
	CreditAmount *int     `json:"credit_amount" binding:"required"`
	Price        *float64 `json:"price"         binding:"required"`
}

type packageView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CreditAmount int     `json:"credit_amount"`
	Price        float64 `json:"price"`
}

func (h *CreditPackageHandler) List(c *gin.Context) {
	pkgs, err := h.PackageStore.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	out := make([]packageView, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, packageView{ID: p.ID, Name: p.Name, CreditAmount: p.CreditAmount, Price: p.Price})
	}
	respondSuccess(c, http.StatusOK, out)
}

func (h *CreditPackageHandler) Create(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		validate.IsNotValidString(req.Name) ||
		validate.IsNotValidInteger(req.CreditAmount) ||
		validate.IsNotValidInteger(req.Price) {
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.PackageStore.FindByName(ctx, *req.Name); err == nil {
		respondFailed(c, http.StatusConflict, msgDuplicate)
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		serverError(c, err)
		return
	}

	pkg := &models.CreditPackage{
		Name:         *req.Name,
		CreditAmount: *req.CreditAmount,
		Price:        *req.Price,
	}
	if err := h.PackageStore.Create(ctx, pkg); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			respondFailed(c, http.StatusConflict, msgDuplicate)
			return
		}
		serverError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, pkg)
}

// Purchase buys the package for the caller at its current price.
func (h *CreditPackageHandler) Purchase(c *gin.Context) {
	id := c.Param("creditPackageId")
	if validate.IsNotValidID(id) {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	ctx := c.Request.Context()
	pkg, err := h.PackageStore.GetByID(ctx, id)
	if errors.Is(err, stores.ErrNotFound) {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	purchase, err := h.PurchaseStore.Create(ctx, middleware.UserID(c), pkg)
	if err != nil {
		serverError(c, err)
		return
	}

	h.Log.Info("credit package purchased",
		zap.String("purchase_id", purchase.ID),
		zap.String("user_id", purchase.UserID),
		zap.Int("credits", purchase.PurchasedCredits),
	)
	respondSuccess(c, http.StatusOK, nil)
}

func (h *CreditPackageHandler) Delete(c *gin.Context) {
	id := c.Param("creditPackageId")
	if validate.IsNotValidID(id) {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	affected, err := h.PackageStore.Delete(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if affected == 0 {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	respondSuccess(c, http.StatusOK, nil)
}
