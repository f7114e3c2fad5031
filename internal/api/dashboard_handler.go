package api

import (
	"errors"
	"net/http"

	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service dependency.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// @Summary Admin overview counts
// @Description Total members, active memberships, total workout logs and today's attendance.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not an admin)"
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, service.ErrDashboardForbidden) {
			abortWithError(c, http.StatusForbidden, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats.")
		}
		return
	}
	c.JSON(http.StatusOK, stats)
}
