package handlers

import (
	"net/http"
	"strconv"

	"admin-console-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard aggregates
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats returns the entity counts
// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=service.DashboardStatsResponse} "Entity counts"
// @Failure 500 {object} Response "Internal server error"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, stats)
}

// GetActivity returns the recent activity feed
// @Summary Recent activity
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of entries" default(10) maximum(50)
// @Success 200 {object} Response{data=[]service.ActivityResponse} "Newest first"
// @Failure 400 {object} Response "Invalid limit"
// @Failure 500 {object} Response "Internal server error"
// @Router /dashboard/activity [get]
func (h *DashboardHandler) GetActivity(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	items, err := h.service.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, items)
}
