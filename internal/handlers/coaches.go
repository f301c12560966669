package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/internal/stores"
	"github.com/TauHsu/course-booking/internal/validate"
)

type CoachHandler struct {
	CoachStore stores.CoachStore
	Log        *zap.Logger
}

func NewCoachHandler(coachStore stores.CoachStore, log *zap.Logger) *CoachHandler {
	return &CoachHandler{CoachStore: coachStore, Log: log.Named("coaches")}
}

type coachSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type coachDetail struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	ExperienceYears int       `json:"experience_years"`
	Description     string    `json:"description"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// List returns coaches newest first, paged by the per/page query pair.
func (h *CoachHandler) List(c *gin.Context) {
	page, err := validate.ParsePagination(c.Query("per"), c.Query("page"))
	if err != nil {
		h.Log.Warn("bad pagination", zap.String("per", c.Query("per")), zap.String("page", c.Query("page")))
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	}

	coaches, err := h.CoachStore.List(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		serverError(c, err)
		return
	}

	out := make([]coachSummary, 0, len(coaches))
	for _, co := range coaches {
		out = append(out, coachSummary{ID: co.ID, Name: co.User.Name})
	}
	respondSuccess(c, http.StatusOK, out)
}

func (h *CoachHandler) Get(c *gin.Context) {
	id := c.Param("coachId")
	if validate.IsNotValidID(id) {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	co, err := h.CoachStore.GetByID(c.Request.Context(), id)
	if errors.Is(err, stores.ErrNotFound) {
		h.Log.Warn("coach not found", zap.String("coach_id", id))
		respondFailed(c, http.StatusBadRequest, "coach not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, coachDetail{
		ID:              co.ID,
		UserID:          co.UserID,
		Name:            co.User.Name,
		ExperienceYears: co.ExperienceYears,
		Description:     co.Description,
		ProfileImageURL: co.ProfileImageURL,
		CreatedAt:       co.CreatedAt,
		UpdatedAt:       co.UpdatedAt,
	})
}
