package handlers

import (
	"net/http"

	response "orcafacil/internal/adapter/http/dto/response"
	"orcafacil/internal/usecase"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler exposes aggregate stats over stored budgets.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("DASHBOARD_FAILED", "Could not compute dashboard summary", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
