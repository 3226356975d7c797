package handler

import (
	reportapp "github.com/backoffice/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the assembled management dashboard
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes registers dashboard routes on the given group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Get)
}

// Get returns the full dashboard payload, served from cache when fresh
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dashboard)
}
