package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hostal-backend/services"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
)

type PlanningController struct {
	PlanningSvc *services.PlanningService
}

func NewPlanningController(svc *services.PlanningService) *PlanningController {
	return &PlanningController{PlanningSvc: svc}
}

// GetPlanning (GET /api/planning?start_date=&days=) — the per-room, per-day
// occupancy grid. Defaults: first day of the current month, 60 days.
func (ctrl *PlanningController) GetPlanning(c *gin.Context) {
	firstDay := services.DefaultPlanningStart(time.Now())
	if start := c.Query("start_date"); start != "" {
		parsed, err := utils.ParseDate(start)
		if err != nil {
			respondError(c, services.NewValidationError(err.Error(), "start_date"))
			return
		}
		firstDay = parsed
	}

	dayCount := services.DefaultPlanningDays
	if days := c.Query("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil || n < 1 {
			respondError(c, services.NewValidationError("days debe ser un entero positivo", "days"))
			return
		}
		dayCount = n
	}

	result, err := ctrl.PlanningSvc.Planning(firstDay, dayCount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
