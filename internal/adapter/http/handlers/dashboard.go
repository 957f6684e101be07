package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"easytasks/internal/adapter/http/mapper"
	"easytasks/internal/adapter/http/middleware"
	"easytasks/internal/core/ports"
	"easytasks/pkg/apierrors"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats answers the dashboard summary for the caller's active tasks. Any
// fetch failure aborts the whole aggregation; no partial payloads.
func (h *DashboardHandler) Stats(c *gin.Context) {
	lang := middleware.GetLang(c)

	stats, err := h.dashboardService.Stats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to compute dashboard stats", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDashboard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardResponse(stats))
}
