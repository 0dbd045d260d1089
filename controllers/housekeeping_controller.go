package controllers

import (
	"net/http"
	"time"

	"hostal-backend/services"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
)

type HousekeepingController struct {
	HousekeepingSvc *services.HousekeepingService
}

func NewHousekeepingController(svc *services.HousekeepingService) *HousekeepingController {
	return &HousekeepingController{HousekeepingSvc: svc}
}

// GetHousekeeping (GET /api/limpieza?fecha=) — the cleaning lists for one
// date, today when omitted.
func (ctrl *HousekeepingController) GetHousekeeping(c *gin.Context) {
	date := time.Now()
	if fecha := c.Query("fecha"); fecha != "" {
		parsed, err := utils.ParseDate(fecha)
		if err != nil {
			respondError(c, services.NewValidationError(err.Error(), "fecha"))
			return
		}
		date = parsed
	}

	result, err := ctrl.HousekeepingSvc.Classify(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
