package controllers

import (
	"log"
	"net/http"

	"hostal-backend/services"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	ImportSvc *services.ImportService
}

func NewImportController(svc *services.ImportService) *ImportController {
	return &ImportController{ImportSvc: svc}
}

// ImportReservations (POST /api/reservas/import) — bulk import of
// pre-parsed spreadsheet rows. Always answers 200 with the batch summary;
// row failures are reported inside it, never abort the batch.
func (ctrl *ImportController) ImportReservations(c *gin.Context) {
	var payload struct {
		Rows []map[string]string `json:"rows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	summary, err := ctrl.ImportSvc.Import(payload.Rows)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("✅ Importación finalizada: processed=%d created=%d errors=%d rooms_created=%d",
		summary.Processed, summary.Created, summary.Errors, summary.RoomsCreated)
	c.JSON(http.StatusOK, summary)
}

// GetImportLogs (GET /api/reservas/import/logs)
func (ctrl *ImportController) GetImportLogs(c *gin.Context) {
	logs, err := ctrl.ImportSvc.Logs()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
