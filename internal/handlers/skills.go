package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/internal/models"
	"github.com/TauHsu/course-booking/internal/stores"
	"github.com/TauHsu/course-booking/internal/validate"
)

type SkillHandler struct {
	SkillStore stores.SkillStore
	Log        *zap.Logger
}

func NewSkillHandler(skillStore stores.SkillStore, log *zap.Logger) *SkillHandler {
	return &SkillHandler{SkillStore: skillStore, Log: log.Named("skills")}
}

type CreateSkillRequest struct {
	Name *string `json:"name" binding:"required"`
}

type skillView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.SkillStore.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	out := make([]skillView, 0, len(skills))
	for _, s := range skills {
		out = append(out, skillView{ID: s.ID, Name: s.Name})
	}
	respondSuccess(c, http.StatusOK, out)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil || validate.IsNotValidString(req.Name) {
		respondFailed(c, http.StatusBadRequest, msgInvalidFields)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.SkillStore.FindByName(ctx, *req.Name); err == nil {
		respondFailed(c, http.StatusConflict, msgDuplicate)
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		serverError(c, err)
		return
	}

	skill := &models.Skill{Name: *req.Name}
	if err := h.SkillStore.Create(ctx, skill); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			respondFailed(c, http.StatusConflict, msgDuplicate)
			return
		}
		serverError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id := c.Param("skillId")
	if validate.IsNotValidID(id) {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	affected, err := h.SkillStore.Delete(c.Request.Context(), id)
	if errors.Is(err, stores.ErrInUse) {
		respondFailed(c, http.StatusConflict, "skill is still used by a course")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	if affected == 0 {
		respondFailed(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	h.Log.Info("skill deleted", zap.String("skill_id", id))
	respondSuccess(c, http.StatusOK, nil)
}
