package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/internal/middleware"
	"github.com/TauHsu/course-booking/internal/models"
	"github.com/TauHsu/course-booking/internal/stores"
	"github.com/TauHsu/course-booking/internal/token"
	"github.com/TauHsu/course-booking/internal/user"
	"github.com/TauHsu/course-booking/internal/validate"
)

const (
	msgBadEmail    = "email does not match the required format"
	msgBadPassword = "password must be 8 to 16 characters and contain a digit, a lower case and an upper case letter"
)

type SignupRequest struct {
	Name     *string `json:"name"     binding:"required"`
	Email    *string `json:"email"    binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    *string `json:"email"    binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name" binding:"required"`
}

type AuthHandler struct {
	UserStore     stores.UserStore
	PurchaseStore stores.CreditPurchaseStore
	BookingStore  stores.BookingStore
	Hasher        user.PasswordHasher
	TokenService  token.TokenService
	TokenTTL      time.Duration
	Log           *zap.Logger
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(
	userStore stores.UserStore,
	purchaseStore stores.CreditPurchaseStore,
	bookingStore stores.BookingStore,
	hasher user.PasswordHasher,
	tokenService token.TokenService,
	tokenTTL time.Duration,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		UserStore:     userStore,
		PurchaseStore: purchaseStore,
		BookingStore:  bookingStore,
		Hasher:        hasher,
		TokenService:  tokenService,
		TokenTTL:      tokenTTL,
		Log:           log.Named("users"),
	}
}

// checkCredentials runs the email and password format checks shared by
// signup and login. It writes the 400 itself and reports false on failure.
func (h *AuthHandler) checkCredentials(c *gin.Context, email, password *string) bool {
	if validate.IsNotValidString(email) || validate.IsNotValidString(password) {
		h.Log.Warn(msgInvalidFields)
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return false
	}
	if validate.IsNotValidEmail(email) {
		h.Log.Warn(msgBadEmail, zap.String("email", *email))
		respondFailed(c, http.StatusBadRequest, msgBadEmail)
		return false
	}
	if validate.IsNotValidPassword(password) {
		h.Log.Warn(msgBadPassword)
		respondFailed(c, http.StatusBadRequest, msgBadPassword)
		return false
	}
	return true
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return
	}
	if validate.IsNotValidString(req.Name) {
		h.Log.Warn(msgInvalidFields)
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return
	}
	if !h.checkCredentials(c, req.Email, req.Password) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.UserStore.FindByEmail(ctx, *req.Email); err == nil {
		h.Log.Warn("email already in use", zap.String("email", *req.Email))
		respondFailed(c, http.StatusConflict, "email already in use")
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		serverError(c, err)
		return
	}

	hashed, err := h.Hasher.Hash([]byte(*req.Password))
	if err != nil {
		serverError(c, err)
		return
	}

	u := &models.User{
		Name:     *req.Name,
		Email:    *req.Email,
		Role:     models.RoleUser,
		Password: string(hashed),
	}
	if err := h.UserStore.CreateUser(ctx, u); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			respondFailed(c, http.StatusConflict, "email already in use")
			return
		}
		serverError(c, err)
		return
	}
	h.Log.Info("user created", zap.String("user_id", u.ID))

	respondSuccess(c, http.StatusCreated, gin.H{
		"user": gin.H{
			"id":   u.ID,
			"name": u.Name,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return
	}
	if !h.checkCredentials(c, req.Email, req.Password) {
		return
	}

	u, err := h.UserStore.FindByEmail(c.Request.Context(), *req.Email)
	if errors.Is(err, stores.ErrNotFound) {
		respondFailed(c, http.StatusBadRequest, "user not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := h.Hasher.Compare([]byte(u.Password), []byte(*req.Password)); err != nil {
		if errors.Is(err, user.ErrPasswordMismatch) {
			respondFailed(c, http.StatusBadRequest, "wrong password")
			return
		}
		serverError(c, err)
		return
	}

	tokenString, err := h.TokenService.GenerateAccessToken(u.ID, h.TokenTTL)
	if err != nil {
		serverError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"token": tokenString,
		"user": gin.H{
			"name": u.Name,
		},
	})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	u, err := h.UserStore.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serverError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"user": gin.H{
			"name":  u.Name,
			"email": u.Email,
		},
	})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil || validate.IsNotValidString(req.Name) {
		h.Log.Warn(msgInvalidFields)
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return
	}

	ctx := c.Request.Context()
	id := middleware.UserID(c)
	u, err := h.UserStore.GetByID(ctx, id)
	if err != nil {
		serverError(c, err)
		return
	}
	if u.Name == *req.Name {
		respondFailed(c, http.StatusBadRequest, "name unchanged")
		return
	}

	affected, err := h.UserStore.UpdateName(ctx, id, u.Name, *req.Name)
	if err != nil {
		serverError(c, err)
		return
	}
	if affected == 0 {
		respondFailed(c, http.StatusBadRequest, "failed to update user")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"user": gin.H{
			"name": *req.Name,
		},
	})
}

type bookedCourse struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id"`
	Name       string    `json:"name"`
	CoachName  string    `json:"coach_name"`
	SkillName  string    `json:"skill_name"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	MeetingURL string    `json:"meeting_url"`
	BookingAt  time.Time `json:"booking_at"`
}

// ListMyCourses reports the caller's credit balance and active bookings.
func (h *AuthHandler) ListMyCourses(c *gin.Context) {
	ctx := c.Request.Context()
	id := middleware.UserID(c)

	total, err := h.PurchaseStore.SumPurchasedCredits(ctx, id)
	if err != nil {
		serverError(c, err)
		return
	}
	used, err := h.BookingStore.CountActiveByUser(ctx, id)
	if err != nil {
		serverError(c, err)
		return
	}
	bookings, err := h.BookingStore.ListActiveByUser(ctx, id)
	if err != nil {
		serverError(c, err)
		return
	}

	remain := total - used
	if remain < 0 {
		remain = 0
	}

	out := make([]bookedCourse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookedCourse{
			ID:         b.ID,
			CourseID:   b.CourseID,
			Name:       b.Course.Name,
			CoachName:  b.Course.User.Name,
			SkillName:  b.Course.Skill.Name,
			StartAt:    b.Course.StartAt,
			EndAt:      b.Course.EndAt,
			MeetingURL: b.Course.MeetingURL,
			BookingAt:  b.BookingAt,
		})
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"credit_remain":  remain,
		"credit_usage":   used,
		"course_booking": out,
	})
}
