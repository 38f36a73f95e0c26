package v1

import (
	"net/http"
	"strconv"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public board: active jobs only, enforced server-side.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("/public", handler.PublicList)
		publicJobs.GET("/public/:id", handler.GetDetails)
		publicJobs.POST("/public/:id/view", handler.RecordView)
		publicJobs.POST("/public/:id/click", handler.RecordClick)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("", handler.List)
		protectedJobs.GET("/:id", handler.GetDetails)
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.PATCH("/:id/active", handler.SetActive)
		protectedJobs.DELETE("/:id", handler.Delete)
		protectedJobs.POST("/generate-description", handler.GenerateDescription)
	}

	employers := protected.Group("/employers")
	{
		employers.GET("/jobs", handler.ListByEmployer)
	}
}

type UpdateJobRequest struct {
	Title        string         `json:"title" binding:"required"`
	Location     string         `json:"location" binding:"required"`
	Type         domain.JobType `json:"type" binding:"required"`
	Description  string         `json:"description" binding:"required"`
	Requirements []string       `json:"requirements"`
	SalaryRange  string         `json:"salary_range"`
	IsActive     bool           `json:"is_active"`
}

// Create godoc
// @Summary      Post a new job
// @Description  Create a job posting; counts against the company's plan credits
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobCreate  true  "Job"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req domain.JobCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job, err := h.jobUC.CreateJob(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// PublicList godoc
// @Summary      List active jobs
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /jobs/public [get]
func (h *JobHandler) PublicList(c *gin.Context) {
	page, pageSize := pagination(c)
	jobs, total, err := h.jobUC.ListPublicActiveJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"jobs": jobs, "total": total})
}

// List godoc
// @Summary      List all jobs including inactive
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"jobs": jobs, "total": total})
}

// GetDetails godoc
// @Summary      Get one job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", job)
}

// ListByEmployer godoc
// @Summary      List the caller's company jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	jobs, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", jobs)
}

// Update godoc
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Job"
// @Success      200  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		ID:           c.Param("id"),
		Title:        req.Title,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		IsActive:     req.IsActive,
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetActive godoc
// @Summary      Activate or deactivate a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      SetActiveRequest  true  "Flag"
// @Success      200  {object}  response.Response
// @Router       /jobs/{id}/active [patch]
// @Security     BearerAuth
func (h *JobHandler) SetActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.SetJobActive(c.Request.Context(), userID, c.Param("id"), *req.IsActive); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", nil)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Removes the posting; applications keep their snapshots
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// RecordView counts an impression on the public board. Fire-and-forget for
// the client; failures are not surfaced.
func (h *JobHandler) RecordView(c *gin.Context) {
	_ = h.jobUC.RecordView(c.Request.Context(), c.Param("id"))
	response.Success(c, http.StatusOK, "OK", nil)
}

func (h *JobHandler) RecordClick(c *gin.Context) {
	_ = h.jobUC.RecordClick(c.Request.Context(), c.Param("id"))
	response.Success(c, http.StatusOK, "OK", nil)
}

type GenerateDescriptionRequest struct {
	Title       string `json:"title" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Location    string `json:"location"`
}

// GenerateDescription godoc
// @Summary      Draft a job description with AI
// @Description  Returns a placeholder string if generation is unavailable
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateDescriptionRequest  true  "Job outline"
// @Success      200  {object}  response.Response
// @Router       /jobs/generate-description [post]
// @Security     BearerAuth
func (h *JobHandler) GenerateDescription(c *gin.Context) {
	var req GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	text, err := h.jobUC.GenerateDescription(c.Request.Context(), req.Title, req.CompanyName, req.Location)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"description": text})
}

func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}
