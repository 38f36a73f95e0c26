package v1

import (
	"net/http"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type TalentHandler struct {
	talentUC domain.TalentUsecase
}

func NewTalentHandler(protected *gin.RouterGroup, talentUC domain.TalentUsecase) {
	handler := &TalentHandler{talentUC: talentUC}

	protected.GET("/talent", handler.Search)
}

// Search godoc
// @Summary      Search the talent pool
// @Description  Employers only; requires an unexpired talent access window
// @Tags         talent
// @Produce      json
// @Param        q    query     string  false  "Name, title or skill"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /talent [get]
// @Security     BearerAuth
func (h *TalentHandler) Search(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	candidates, err := h.talentUC.SearchCandidates(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", candidates)
}
