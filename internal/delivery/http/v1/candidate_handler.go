package v1

import (
	"net/http"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	me := protected.Group("/candidates/me")
	{
		me.PUT("/profile", handler.UpdateProfile)
		me.PUT("/preferences", handler.UpdatePreferences)
		me.POST("/saved-jobs/:jobId", handler.ToggleSavedJob)
		me.POST("/experience", handler.AddExperience)
		me.DELETE("/experience/:id", handler.RemoveExperience)
		me.POST("/alerts", handler.AddAlert)
		me.DELETE("/alerts/:id", handler.RemoveAlert)
	}
}

// UpdateProfile godoc
// @Summary      Update the candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileUpdate  true  "Profile"
// @Success      200  {object}  response.Response
// @Router       /candidates/me/profile [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.candidateUC.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", user)
}

// UpdatePreferences godoc
// @Summary      Update visibility and work preferences
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        prefs  body      domain.Preferences  true  "Preferences"
// @Success      200  {object}  response.Response
// @Router       /candidates/me/preferences [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdatePreferences(c *gin.Context) {
	var req domain.Preferences
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.candidateUC.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Preferences updated", user)
}

// ToggleSavedJob godoc
// @Summary      Save or unsave a job
// @Description  Toggles; calling twice restores the original state
// @Tags         candidates
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Router       /candidates/me/saved-jobs/{jobId} [post]
// @Security     BearerAuth
func (h *CandidateHandler) ToggleSavedJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.candidateUC.ToggleSavedJob(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs updated", user)
}

func (h *CandidateHandler) AddExperience(c *gin.Context) {
	var req domain.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.candidateUC.AddExperience(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", user)
}

func (h *CandidateHandler) RemoveExperience(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.candidateUC.RemoveExperience(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience removed", user)
}

func (h *CandidateHandler) AddAlert(c *gin.Context) {
	var req domain.JobAlert
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.candidateUC.AddAlert(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Alert added", user)
}

func (h *CandidateHandler) RemoveAlert(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.candidateUC.RemoveAlert(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Alert removed", user)
}
