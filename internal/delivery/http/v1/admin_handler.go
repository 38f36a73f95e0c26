package v1

import (
	"net/http"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	// The usecase re-checks the admin role; routing here is just grouping.
	admin := protected.Group("/admin")
	{
		admin.GET("/stats", handler.Stats)
		admin.GET("/users", handler.ListUsers)
		admin.POST("/users", handler.CreateUser)
		admin.PUT("/users/:id", handler.UpdateUser)
		admin.PATCH("/users/:id/active", handler.SetUserActive)
		admin.DELETE("/users/:id", handler.DeleteUser)
		admin.DELETE("/jobs/:id", handler.DeleteJob)
	}
}

// Stats godoc
// @Summary      Platform counters
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}

// ListUsers godoc
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", users)
}

// CreateUser godoc
// @Summary      Create an account with any role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        user  body      domain.AdminUserInput  true  "Account"
// @Success      201  {object}  response.Response
// @Router       /admin/users [post]
// @Security     BearerAuth
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req domain.AdminUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUC.CreateUser(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User created", user)
}

// UpdateUser godoc
// @Summary      Edit an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "User ID"
// @Param        user  body      domain.AdminUserUpdate true  "Account"
// @Success      200  {object}  response.Response
// @Router       /admin/users/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req domain.AdminUserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUC.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetUserActive godoc
// @Summary      Suspend or reinstate an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "User ID"
// @Param        body  body      SetUserActiveRequest  true  "Flag"
// @Success      200  {object}  response.Response
// @Router       /admin/users/{id}/active [patch]
// @Security     BearerAuth
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUC.SetUserActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Description  Hard delete; the user's applications keep their snapshots
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUC.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

// DeleteJob godoc
// @Summary      Delete any job
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Router       /admin/jobs/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	if err := h.adminUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}
