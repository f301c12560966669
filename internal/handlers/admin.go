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
	"github.com/TauHsu/course-booking/internal/validate"
)

type AdminHandler struct {
	CoachStore  stores.CoachStore
	CourseStore stores.CourseStore
	SkillStore  stores.SkillStore
	Log         *zap.Logger
}

func NewAdminHandler(
	coachStore stores.CoachStore,
	courseStore stores.CourseStore,
	skillStore stores.SkillStore,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		CoachStore:  coachStore,
		CourseStore: courseStore,
		SkillStore:  skillStore,
		Log:         log.Named("admin"),
	}
}

type PromoteCoachRequest struct {
	ExperienceYears *int    `json:"experience_years" binding:"required"`
	Description     *string `json:"description"      binding:"required"`
	ProfileImageURL *string `json:"profile_image_url"`
}

type CreateCourseRequest struct {
	SkillID         *string    `json:"skill_id"         binding:"required"`
	Name            *string    `json:"name"             binding:"required"`
	Description     *string    `json:"description"      binding:"required"`
	StartAt         *time.Time `json:"start_at"         binding:"required"`
	EndAt           *time.Time `json:"end_at"           binding:"required"`
	MaxParticipants *int       `json:"max_participants" binding:"required"`
	MeetingURL      *string    `json:"meeting_url"`
}

// PromoteCoach turns an existing user into a coach.
func (h *AdminHandler) PromoteCoach(c *gin.Context) {
	userID := c.Param("userId")
	if validate.IsNotValidID(userID) {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	var req PromoteCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		validate.IsNotValidInteger(req.ExperienceYears) ||
		validate.IsNotValidString(req.Description) {
		h.Log.Warn(msgInvalidFields, zap.String("user_id", userID))
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return
	}
	if !validate.IsUndefined(req.ProfileImageURL) && validate.IsNotValidURL(req.ProfileImageURL) {
		respondFailed(c, http.StatusBadRequest, "profile_image_url must be an https url")
		return
	}

	coach := &models.Coach{
		UserID:          userID,
		ExperienceYears: *req.ExperienceYears,
		Description:     *req.Description,
	}
	if req.ProfileImageURL != nil {
		coach.ProfileImageURL = *req.ProfileImageURL
	}

	err := h.CoachStore.Promote(c.Request.Context(), coach)
	switch {
	case errors.Is(err, stores.ErrNotFound):
		respondFailed(c, http.StatusBadRequest, "user not found")
		return
	case errors.Is(err, stores.ErrAlreadyCoach):
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		serverError(c, err)
		return
	}

	h.Log.Info("user promoted to coach", zap.String("user_id", userID), zap.String("coach_id", coach.ID))
	respondSuccess(c, http.StatusCreated, gin.H{
		"user": gin.H{
			"name": coach.User.Name,
			"role": coach.User.Role,
		},
		"coach": coach,
	})
}

// CreateCourse publishes a course taught by the calling coach.
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		validate.IsNotValidID(req.SkillID) ||
		validate.IsNotValidString(req.Name) ||
		validate.IsNotValidString(req.Description) ||
		validate.IsNotValidInteger(req.MaxParticipants) {
		h.Log.Warn(msgInvalidFields)
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return
	}
	if *req.MaxParticipants == 0 {
		respondFailed(c, http.StatusBadRequest, "max_participants must be at least 1")
		return
	}
	if !req.StartAt.Before(*req.EndAt) {
		respondFailed(c, http.StatusBadRequest, "start_at must be before end_at")
		return
	}
	if !validate.IsUndefined(req.MeetingURL) && validate.IsNotValidURL(req.MeetingURL) {
		respondFailed(c, http.StatusBadRequest, "meeting_url must be an https url")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.SkillStore.GetByID(ctx, *req.SkillID); errors.Is(err, stores.ErrNotFound) {
		respondFailed(c, http.StatusBadRequest, "skill not found")
		return
	} else if err != nil {
		serverError(c, err)
		return
	}

	course := &models.Course{
		UserID:          middleware.UserID(c),
		SkillID:         *req.SkillID,
		Name:            *req.Name,
		Description:     *req.Description,
		StartAt:         *req.StartAt,
		EndAt:           *req.EndAt,
		MaxParticipants: *req.MaxParticipants,
	}
	if req.MeetingURL != nil {
		course.MeetingURL = *req.MeetingURL
	}
	if err := h.CourseStore.Create(ctx, course); err != nil {
		serverError(c, err)
		return
	}

	h.Log.Info("course created", zap.String("course_id", course.ID), zap.String("coach_user_id", course.UserID))
	respondSuccess(c, http.StatusCreated, gin.H{"course": course})
}
