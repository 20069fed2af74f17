package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/napatr/coffeehouse/internal/server/http/dto"
)

// StatsHandler serves the staff dashboard endpoint.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Dashboard handles GET /orders/stats/dashboard and GET /dashboard/stats.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.facade.DashboardStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DashboardStatsResponse{
		PendingOrders:   stats.PendingOrders,
		PreparingOrders: stats.PreparingOrders,
		ReadyOrders:     stats.ReadyOrders,
		TodayRevenue:    stats.TodayRevenue,
		TodayOrders:     stats.TodayOrders,
	})
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.Health(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
