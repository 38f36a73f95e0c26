package v1

import (
	"net/http"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subUC domain.SubscriptionUsecase
}

func NewSubscriptionHandler(public *gin.RouterGroup, protected *gin.RouterGroup, subUC domain.SubscriptionUsecase) {
	handler := &SubscriptionHandler{subUC: subUC}

	public.GET("/plans", handler.ListPlans)

	subs := protected.Group("/subscription")
	{
		subs.GET("/can-post-job", handler.CanPostJob)
		subs.GET("/can-access-talent", handler.CanAccessTalent)
		subs.POST("/upgrade", handler.Upgrade)
	}
}

// ListPlans godoc
// @Summary      Get the pricing table
// @Tags         subscription
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /plans [get]
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.subUC.ListPlans(c.Request.Context()))
}

// CanPostJob godoc
// @Summary      Check the posting entitlement
// @Description  A denial is a 200 with allowed=false and a reason
// @Tags         subscription
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /subscription/can-post-job [get]
// @Security     BearerAuth
func (h *SubscriptionHandler) CanPostJob(c *gin.Context) {
	companyID, err := h.callerCompanyID(c)
	if err != nil {
		c.Error(err)
		return
	}

	ent, err := h.subUC.CanPostJob(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", ent)
}

// CanAccessTalent godoc
// @Summary      Check the talent pool entitlement
// @Tags         subscription
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /subscription/can-access-talent [get]
// @Security     BearerAuth
func (h *SubscriptionHandler) CanAccessTalent(c *gin.Context) {
	companyID, err := h.callerCompanyID(c)
	if err != nil {
		c.Error(err)
		return
	}

	ent, err := h.subUC.CanAccessTalent(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", ent)
}

type UpgradeRequest struct {
	CompanyID string          `json:"company_id" binding:"required"`
	PlanID    domain.PlanTier `json:"plan_id" binding:"required"`
}

// Upgrade godoc
// @Summary      Switch the company to another plan
// @Description  Replaces the subscription wholesale; no proration
// @Tags         subscription
// @Accept       json
// @Produce      json
// @Param        body  body      UpgradeRequest  true  "Target plan"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /subscription/upgrade [post]
// @Security     BearerAuth
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	role := c.GetString(string(domain.KeyUserRole))
	if role != string(domain.RoleAdmin) {
		companyID, err := h.callerCompanyID(c)
		if err != nil {
			c.Error(err)
			return
		}
		if companyID != req.CompanyID {
			c.Error(apperror.Forbidden("You do not manage this company"))
			return
		}
	}

	company, err := h.subUC.Upgrade(c.Request.Context(), req.CompanyID, req.PlanID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Subscription updated", company)
}

// callerCompanyID resolves the employer's company from the authenticated
// user loaded by the middleware.
func (h *SubscriptionHandler) callerCompanyID(c *gin.Context) (string, error) {
	companyID := c.GetString(string(domain.KeyCompanyID))
	if companyID == "" {
		return "", apperror.Forbidden("Employer account required")
	}
	return companyID, nil
}
