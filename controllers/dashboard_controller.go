package controllers

import (
	"net/http"
	"time"

	"hostal-backend/services"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	OccupancySvc *services.OccupancyService
}

func NewDashboardController(svc *services.OccupancyService) *DashboardController {
	return &DashboardController{OccupancySvc: svc}
}

// GetStatistics (GET /api/estadisticas)
func (ctrl *DashboardController) GetStatistics(c *gin.Context) {
	stats, err := ctrl.OccupancySvc.Statistics(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDashboard (GET /api/dashboard?selected_date=) — home-screen summary:
// latest reservations, the day's movements, free rooms with availability.
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	date := time.Now()
	if selected := c.Query("selected_date"); selected != "" {
		parsed, err := utils.ParseDate(selected)
		if err != nil {
			respondError(c, services.NewValidationError(err.Error(), "selected_date"))
			return
		}
		date = parsed
	}

	dashboard, err := ctrl.OccupancySvc.Dashboard(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
