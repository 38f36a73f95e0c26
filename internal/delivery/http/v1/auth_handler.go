package v1

import (
	"net/http"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	authPublic := public.Group("/auth")
	{
		authPublic.POST("/login", handler.Login)
		authPublic.POST("/signup/candidate", handler.SignupCandidate)
		authPublic.POST("/signup/employer", handler.SignupEmployer)
	}

	authProtected := protected.Group("/auth")
	{
		authProtected.POST("/logout", handler.Logout)
		authProtected.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password, returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logged in", result)
}

// SignupCandidate godoc
// @Summary      Register a candidate account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.CandidateSignup  true  "Signup details"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/signup/candidate [post]
func (h *AuthHandler) SignupCandidate(c *gin.Context) {
	var req domain.CandidateSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.RegisterCandidate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Account created", result)
}

// SignupEmployer godoc
// @Summary      Register an employer account and its company
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.EmployerSignup  true  "Signup details"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/signup/employer [post]
func (h *AuthHandler) SignupEmployer(c *gin.Context) {
	var req domain.EmployerSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.RegisterEmployer(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Account created", result)
}

// Logout godoc
// @Summary      Log out and revoke the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(string(domain.KeySessionID))
	if err := h.authUC.Logout(c.Request.Context(), sessionID); err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}
