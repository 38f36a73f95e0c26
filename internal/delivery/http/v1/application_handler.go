package v1

import (
	"net/http"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	apps := protected.Group("/applications")
	{
		apps.POST("", handler.Apply)
		apps.GET("/me", handler.ListMine)
		apps.GET("/company", handler.ListForCompany)
		apps.PATCH("/:id/status", handler.UpdateStatus)
		apps.POST("/:id/withdraw", handler.Withdraw)
		apps.PATCH("/:id/employer-notes", handler.SetEmployerNotes)
		apps.PATCH("/:id/notes", handler.SetCandidateNotes)
	}
}

type ApplyRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Candidates only; one application per job, withdrawn included
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Job reference"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.appUC.ApplyToJob(c.Request.Context(), userID, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	apps, err := h.appUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "OK", apps)
}

// ListForCompany godoc
// @Summary      List applications to the caller's company jobs
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications/company [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForCompany(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	apps, err := h.appUC.GetEmployerApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", apps)
}

type UpdateStatusRequest struct {
	Status domain.ApplicationStatus `json:"status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Move an application to another status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Status updated", nil)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response
// @Router       /applications/{id}/withdraw [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.Withdraw(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

type EmployerNotesRequest struct {
	Notes  string `json:"notes"`
	Rating int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// SetEmployerNotes updates the employer-private evaluation fields.
func (h *ApplicationHandler) SetEmployerNotes(c *gin.Context) {
	var req EmployerNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.SetEmployerNotes(c.Request.Context(), userID, c.Param("id"), req.Notes, req.Rating); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notes saved", nil)
}

type CandidateNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *ApplicationHandler) SetCandidateNotes(c *gin.Context) {
	var req CandidateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.SetCandidateNotes(c.Request.Context(), userID, c.Param("id"), req.Notes); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notes saved", nil)
}
