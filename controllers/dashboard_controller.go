// controllers/dashboard_controller.go
package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// Dashboard shows this many top-ranked designs beside the charts.
const dashboardTopDesigns = 5

type DashboardController struct {
	statsService  *services.StatsService
	designService *services.DesignService
}

func NewDashboardController(statsService *services.StatsService, designService *services.DesignService) *DashboardController {
	return &DashboardController{statsService: statsService, designService: designService}
}

// GET /admin/dashboard (Admin)
func (dc *DashboardController) Stats(c *gin.Context) {
	stats, err := dc.statsService.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	top, err := dc.designService.TopDesigns(dashboardTopDesigns)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"stats": stats, "top_designs": top})
}
