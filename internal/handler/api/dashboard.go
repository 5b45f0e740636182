package api

import (
	"net/http"

	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

// @Summary Operational dashboard summary
// @Description Today's movements, room status counts, occupancy, open work and revenue
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardSummary
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardQueries.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
