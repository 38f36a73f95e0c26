package v1

import (
	"net/http"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies/:id", handler.Get)

	companies := protected.Group("/companies")
	{
		companies.PUT("/:id", handler.Update)
		companies.GET("/:id/team", handler.Team)
	}
}

// Get godoc
// @Summary      Get a company profile
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyUC.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", company)
}

// Update godoc
// @Summary      Update a company profile
// @Description  Renames do not touch the company name stamped on existing jobs
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Company ID"
// @Param        company  body      domain.CompanyUpdate  true  "Company"
// @Success      200  {object}  response.Response
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	var req domain.CompanyUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	company, err := h.companyUC.UpdateCompany(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", company)
}

// Team godoc
// @Summary      List a company's team members
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Router       /companies/{id}/team [get]
// @Security     BearerAuth
func (h *CompanyHandler) Team(c *gin.Context) {
	members, err := h.companyUC.GetTeamMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", members)
}
