package handlers

import (
	"net/http"
	"time"

	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler handles portfolio dashboard operations
type DashboardHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(common *CommonServices, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &DashboardHandler{
		common: common,
		logger: logger,
	}
}

type DashboardMetricsResponse = responses.DashboardMetricsResponse

// GetMetrics godoc
// @Summary Get dashboard metrics
// @Description Retrieves portfolio counts, the monthly rent roll and collection figures for the current month
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} DashboardMetricsResponse
// @Security ApiKeyAuth
// @Router /dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.common.DashboardService.GetMetrics(c.Request.Context(), time.Now().UTC())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to compute dashboard metrics", err)
		return
	}

	sendSuccess(c, http.StatusOK, metrics)
}
