package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/internal/middleware"
	"github.com/TauHsu/course-booking/internal/stores"
	"github.com/TauHsu/course-booking/internal/validate"
)

type CourseHandler struct {
	CourseStore  stores.CourseStore
	BookingStore stores.BookingStore
	Log          *zap.Logger
}

func NewCourseHandler(courseStore stores.CourseStore, bookingStore stores.BookingStore, log *zap.Logger) *CourseHandler {
	return &CourseHandler{
		CourseStore:  courseStore,
		BookingStore: bookingStore,
		Log:          log.Named("courses"),
	}
}

type courseView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	MaxParticipants int       `json:"max_participants"`
	CoachName       string    `json:"coach_name"`
	SkillName       string    `json:"skill_name"`
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.CourseStore.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	out := make([]courseView, 0, len(courses))
	for _, co := range courses {
		out = append(out, courseView{
			ID:              co.ID,
			Name:            co.Name,
			Description:     co.Description,
			StartAt:         co.StartAt,
			EndAt:           co.EndAt,
			MaxParticipants: co.MaxParticipants,
			CoachName:       co.User.Name,
			SkillName:       co.Skill.Name,
		})
	}
	respondSuccess(c, http.StatusOK, out)
}

// Book reserves a seat on the course for the caller, spending one credit.
func (h *CourseHandler) Book(c *gin.Context) {
	userID := middleware.UserID(c)
	courseID := c.Param("courseId")
	if validate.IsNotValidID(courseID) {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	booking, err := h.BookingStore.Book(c.Request.Context(), userID, courseID)
	switch {
	case errors.Is(err, stores.ErrNotFound):
		respondFailed(c, http.StatusBadRequest, "course not found")
		return
	case errors.Is(err, stores.ErrNoCredits),
		errors.Is(err, stores.ErrCourseFull),
		errors.Is(err, stores.ErrAlreadyBooked):
		h.Log.Warn("booking rejected",
			zap.String("user_id", userID),
			zap.String("course_id", courseID),
			zap.Error(err),
		)
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		serverError(c, err)
		return
	}

	h.Log.Info("course booked", zap.String("booking_id", booking.ID), zap.String("user_id", userID))
	respondSuccess(c, http.StatusCreated, nil)
}

func (h *CourseHandler) Cancel(c *gin.Context) {
	userID := middleware.UserID(c)
	courseID := c.Param("courseId")
	if validate.IsNotValidID(courseID) {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	err := h.BookingStore.Cancel(c.Request.Context(), userID, courseID)
	switch {
	case errors.Is(err, stores.ErrNotFound):
		respondFailed(c, http.StatusBadRequest, "booking not found")
		return
	case errors.Is(err, stores.ErrCancelFailed):
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		serverError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, nil)
}
